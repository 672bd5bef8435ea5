// Package config provides YAML-based world configuration loading and
// validation for the yard simulation.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/mkravets/yardwalk/internal/core"
	"github.com/mkravets/yardwalk/internal/engine"
)

// WorldConfig describes a complete yard: dimensions, the player, the static
// obstacle set and the proximity actors. Loaded once at session start; the
// simulation never re-reads it.
type WorldConfig struct {
	World     WorldDims      `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Tuning    TuningConfig   `yaml:"tuning"`
	Obstacles []RectConfig   `yaml:"obstacles"`
	Actors    []ActorConfig  `yaml:"actors"`
}

// WorldDims is the world rectangle, anchored at the origin.
type WorldDims struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig positions the player and sets movement speed.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // world units per second
}

// TuningConfig holds empirically tuned timing constants. They are content,
// not part of the simulation contract.
type TuningConfig struct {
	BumpCooldownMS int `yaml:"bump_cooldown_ms"`
	AnimationMS    int `yaml:"animation_ms"` // default actor animation duration
}

// BumpCooldown returns the cooldown as a duration.
func (t TuningConfig) BumpCooldown() time.Duration {
	return time.Duration(t.BumpCooldownMS) * time.Millisecond
}

// RectConfig is one static obstacle rectangle.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts to the geometry type.
func (r RectConfig) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.Width, r.Height)
}

// ActorConfig describes one proximity actor and its behavior profile.
type ActorConfig struct {
	ID      string        `yaml:"id"`
	Kind    string        `yaml:"kind"` // "npc" or "mailbox"
	X       float64       `yaml:"x"`
	Y       float64       `yaml:"y"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Profile ProfileConfig `yaml:"profile"`
}

// ProfileConfig is the per-actor behavior profile: the interaction radius and
// the feedback actions fired on enter/exit. AnimationMS of zero falls back to
// the tuning default.
type ProfileConfig struct {
	Radius      float64 `yaml:"radius"`
	EnterAction string  `yaml:"enter_action"`
	ExitAction  string  `yaml:"exit_action"`
	AnimationMS int     `yaml:"animation_ms"`
}

// Validate reports the first configuration error found. Geometry is checked
// here so world construction can assume well-formed numbers; the engine
// re-validates as a second layer.
func (c WorldConfig) Validate() error {
	if !finite(c.World.Width) || c.World.Width <= 0 || !finite(c.World.Height) || c.World.Height <= 0 {
		return fmt.Errorf("worldcfg: world dimensions %gx%g must be positive", c.World.Width, c.World.Height)
	}
	if err := validateRect("player", c.Player.X, c.Player.Y, c.Player.Width, c.Player.Height); err != nil {
		return err
	}
	if c.Player.Speed <= 0 || !finite(c.Player.Speed) {
		return fmt.Errorf("worldcfg: player speed %g must be positive", c.Player.Speed)
	}
	if c.Tuning.BumpCooldownMS < 0 {
		return fmt.Errorf("worldcfg: bump cooldown %dms must not be negative", c.Tuning.BumpCooldownMS)
	}
	if c.Tuning.AnimationMS < 0 {
		return fmt.Errorf("worldcfg: animation duration %dms must not be negative", c.Tuning.AnimationMS)
	}

	for i, o := range c.Obstacles {
		if err := validateRect(fmt.Sprintf("obstacle %d", i), o.X, o.Y, o.Width, o.Height); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Actors))
	for i, a := range c.Actors {
		name := a.ID
		if name == "" {
			return fmt.Errorf("worldcfg: actor %d has no id", i)
		}
		if seen[name] {
			return fmt.Errorf("worldcfg: duplicate actor id %q", name)
		}
		seen[name] = true

		if _, err := actorKind(a.Kind); err != nil {
			return fmt.Errorf("worldcfg: actor %q: %w", name, err)
		}
		if err := validateRect("actor "+name, a.X, a.Y, a.Width, a.Height); err != nil {
			return err
		}
		if a.Profile.Radius <= 0 || !finite(a.Profile.Radius) {
			return fmt.Errorf("worldcfg: actor %q: radius %g must be positive", name, a.Profile.Radius)
		}
		if a.Profile.EnterAction == "" {
			return fmt.Errorf("worldcfg: actor %q: enter_action must be set", name)
		}
		if a.Profile.AnimationMS < 0 {
			return fmt.Errorf("worldcfg: actor %q: animation_ms must not be negative", name)
		}
	}
	return nil
}

func validateRect(what string, x, y, w, h float64) error {
	for _, v := range [4]float64{x, y, w, h} {
		if !finite(v) {
			return fmt.Errorf("worldcfg: %s has a non-finite coordinate", what)
		}
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("worldcfg: %s size %gx%g must be positive", what, w, h)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func actorKind(kind string) (engine.EntityKind, error) {
	switch kind {
	case "npc", "":
		return engine.KindNPC, nil
	case "mailbox":
		return engine.KindMailbox, nil
	default:
		return 0, fmt.Errorf("unknown actor kind %q", kind)
	}
}

// Spec converts a validated config into the engine's world spec.
func (c WorldConfig) Spec() engine.WorldSpec {
	spec := engine.WorldSpec{
		Bounds: core.NewRect(0, 0, c.World.Width, c.World.Height),
		Player: engine.PlayerSpec{
			ID:           "player",
			Bounds:       core.NewRect(c.Player.X, c.Player.Y, c.Player.Width, c.Player.Height),
			Speed:        c.Player.Speed,
			BumpCooldown: c.Tuning.BumpCooldown(),
		},
	}

	for _, o := range c.Obstacles {
		spec.Obstacles = append(spec.Obstacles, o.Rect())
	}

	for _, a := range c.Actors {
		kind, _ := actorKind(a.Kind) // validated already
		animMS := a.Profile.AnimationMS
		if animMS == 0 {
			animMS = c.Tuning.AnimationMS
		}
		spec.Actors = append(spec.Actors, engine.ActorSpec{
			ID:     a.ID,
			Kind:   kind,
			Bounds: core.NewRect(a.X, a.Y, a.Width, a.Height),
			Profile: engine.BehaviorProfile{
				InteractionRadius: a.Profile.Radius,
				EnterAction:       a.Profile.EnterAction,
				ExitAction:        a.Profile.ExitAction,
				AnimationDuration: time.Duration(animMS) * time.Millisecond,
			},
		})
	}
	return spec
}
