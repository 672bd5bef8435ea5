package config

import (
	"testing"
	"time"

	"github.com/mkravets/yardwalk/internal/engine"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultWorldConfig().Validate(); err != nil {
		t.Fatalf("DefaultWorldConfig().Validate() error = %v", err)
	}

	// The embedded YAML must parse and agree with the hardcoded fallback.
	cfg, err := parse(defaultWorldYAML, "embedded default")
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	want := DefaultWorldConfig()
	if cfg.World != want.World || cfg.Player != want.Player || cfg.Tuning != want.Tuning {
		t.Errorf("embedded default diverges from hardcoded fallback:\n  yaml %+v\n  code %+v", cfg, want)
	}
	if len(cfg.Obstacles) != len(want.Obstacles) || len(cfg.Actors) != len(want.Actors) {
		t.Errorf("embedded default content counts: %d obstacles / %d actors, fallback %d / %d",
			len(cfg.Obstacles), len(cfg.Actors), len(want.Obstacles), len(want.Actors))
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorldConfig)
	}{
		{"zero world width", func(c *WorldConfig) { c.World.Width = 0 }},
		{"negative world height", func(c *WorldConfig) { c.World.Height = -10 }},
		{"zero player size", func(c *WorldConfig) { c.Player.Width = 0 }},
		{"zero speed", func(c *WorldConfig) { c.Player.Speed = 0 }},
		{"negative bump cooldown", func(c *WorldConfig) { c.Tuning.BumpCooldownMS = -1 }},
		{"degenerate obstacle", func(c *WorldConfig) { c.Obstacles[0].Height = 0 }},
		{"actor without id", func(c *WorldConfig) { c.Actors[0].ID = "" }},
		{"duplicate actor id", func(c *WorldConfig) { c.Actors[1].ID = c.Actors[0].ID }},
		{"unknown actor kind", func(c *WorldConfig) { c.Actors[0].Kind = "dragon" }},
		{"zero radius", func(c *WorldConfig) { c.Actors[0].Profile.Radius = 0 }},
		{"missing enter action", func(c *WorldConfig) { c.Actors[0].Profile.EnterAction = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWorldConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted a malformed config")
			}
		})
	}
}

func TestSpecConversion(t *testing.T) {
	cfg := DefaultWorldConfig()
	spec := cfg.Spec()

	if spec.Bounds.W != cfg.World.Width || spec.Bounds.H != cfg.World.Height {
		t.Errorf("bounds = %+v, expected %gx%g at origin", spec.Bounds, cfg.World.Width, cfg.World.Height)
	}
	if spec.Player.ID != "player" {
		t.Errorf("player id = %q", spec.Player.ID)
	}
	if spec.Player.BumpCooldown != 400*time.Millisecond {
		t.Errorf("bump cooldown = %v", spec.Player.BumpCooldown)
	}
	if len(spec.Obstacles) != len(cfg.Obstacles) || len(spec.Actors) != len(cfg.Actors) {
		t.Fatalf("spec carries %d obstacles / %d actors", len(spec.Obstacles), len(spec.Actors))
	}

	// Per-actor animation overrides the tuning default; zero falls back.
	byID := make(map[string]engine.ActorSpec)
	for _, a := range spec.Actors {
		byID[a.ID] = a
	}
	if got := byID["rex"].Profile.AnimationDuration; got != 600*time.Millisecond {
		t.Errorf("rex animation = %v, expected tuning default", got)
	}
	if got := byID["biscuit"].Profile.AnimationDuration; got != 900*time.Millisecond {
		t.Errorf("biscuit animation = %v, expected per-actor override", got)
	}
	if byID["mailbox"].Kind != engine.KindMailbox {
		t.Errorf("mailbox kind = %v", byID["mailbox"].Kind)
	}
	if byID["rex"].Kind != engine.KindNPC {
		t.Errorf("rex kind = %v", byID["rex"].Kind)
	}

	// The converted spec must be accepted by the engine end to end.
	if _, err := engine.NewWorld(spec, nil, nil); err != nil {
		t.Fatalf("engine rejected the default yard: %v", err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/world.yaml"); err == nil {
		t.Error("Load() with a missing explicit path must fail, not fall back")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := parse([]byte("{not yaml"), "test"); err == nil {
		t.Error("parse() accepted malformed YAML")
	}
	if _, err := parse([]byte("world:\n  width: -5\n  height: 10\n"), "test"); err == nil {
		t.Error("parse() accepted an invalid config")
	}
}
