package engine

import (
	"fmt"
	"time"

	"github.com/mkravets/yardwalk/internal/core"
)

// PlayerSpec describes the player at world-setup time.
type PlayerSpec struct {
	ID           string
	Bounds       core.Rect
	Speed        float64 // world units per second
	BumpCooldown time.Duration
}

// ActorSpec describes one proximity actor at world-setup time.
type ActorSpec struct {
	ID      string
	Kind    EntityKind
	Bounds  core.Rect
	Profile BehaviorProfile
}

// WorldSpec is everything needed to construct a world. It is produced by the
// config layer; the engine validates it and aborts construction on malformed
// geometry rather than producing undefined collision behavior.
type WorldSpec struct {
	Bounds    core.Rect
	Player    PlayerSpec
	Obstacles []core.Rect
	Actors    []ActorSpec
}

// World owns the simulation state: the player, the proximity actors and the
// shared read-only obstacle set. Update advances everything exactly once per
// frame in a fixed order.
type World struct {
	bounds    core.Rect
	player    *Player
	actors    []*Actor
	obstacles []core.Rect
	bus       *Bus
	diag      *Diagnostics
}

// NewWorld validates the spec and constructs the world. bus and diag may be
// nil for headless use (tests); events are then dropped.
func NewWorld(spec WorldSpec, bus *Bus, diag *Diagnostics) (*World, error) {
	if spec.Bounds.Degenerate() {
		return nil, fmt.Errorf("engine: world bounds %+v are degenerate", spec.Bounds)
	}
	if err := validateObstacles(spec.Obstacles, spec.Bounds); err != nil {
		return nil, err
	}
	if spec.Player.Speed <= 0 {
		return nil, fmt.Errorf("engine: player speed %g must be positive", spec.Player.Speed)
	}

	player, err := NewPlayer(
		spec.Player.ID,
		spec.Player.Bounds.X, spec.Player.Bounds.Y,
		spec.Player.Bounds.W, spec.Player.Bounds.H,
		spec.Player.Speed,
		spec.Bounds,
		spec.Player.BumpCooldown,
	)
	if err != nil {
		return nil, err
	}
	for _, o := range spec.Obstacles {
		if player.Bounds().Intersects(o) {
			return nil, fmt.Errorf("engine: player start %+v overlaps obstacle %+v", player.Bounds(), o)
		}
	}

	w := &World{
		bounds:    spec.Bounds,
		player:    player,
		obstacles: append([]core.Rect(nil), spec.Obstacles...),
		bus:       bus,
		diag:      diag,
	}

	seen := map[string]bool{spec.Player.ID: true}
	for _, as := range spec.Actors {
		if seen[as.ID] {
			return nil, fmt.Errorf("engine: duplicate entity id %q", as.ID)
		}
		seen[as.ID] = true

		actor, err := NewActor(as.ID, as.Kind, as.Bounds.X, as.Bounds.Y, as.Bounds.W, as.Bounds.H, spec.Bounds, as.Profile)
		if err != nil {
			return nil, err
		}
		w.actors = append(w.actors, actor)
	}

	return w, nil
}

func validateObstacles(obstacles []core.Rect, world core.Rect) error {
	for i, o := range obstacles {
		if o.Degenerate() {
			return fmt.Errorf("engine: obstacle %d %+v is degenerate", i, o)
		}
		if !world.ContainsRect(o) {
			return fmt.Errorf("engine: obstacle %d %+v extends outside world %+v", i, o, world)
		}
	}
	return nil
}

// Player returns the player entity. Read-only for render consumers.
func (w *World) Player() *Player {
	return w.player
}

// Actors returns the proximity actors. Read-only for render consumers.
func (w *World) Actors() []*Actor {
	return w.actors
}

// Obstacles returns the static obstacle set. Callers must not mutate it; the
// set is replaced wholesale via ReplaceObstacles.
func (w *World) Obstacles() []core.Rect {
	return w.obstacles
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Rect {
	return w.bounds
}

// Diagnostics returns the session diagnostics, which may be nil.
func (w *World) Diagnostics() *Diagnostics {
	return w.diag
}

// Update advances the simulation by one frame in the fixed order: player
// movement first, then every actor's proximity tick against the player's
// post-movement position, then invariant bookkeeping. A failure confined to
// one actor does not prevent the others from ticking.
func (w *World) Update(in core.Intent, dt time.Duration, now time.Time) {
	outcome, err := w.player.AttemptMove(in, w.obstacles, dt, now)
	if err != nil && w.diag != nil {
		w.diag.RecordMoveError(err)
	}
	if outcome.Bumped {
		w.publish(MoveBlockedEvent{
			PlayerID: w.player.ID(),
			BlockedX: outcome.BlockedX,
			BlockedY: outcome.BlockedY,
			At:       now,
		})
	}

	playerCenter := w.player.Center()
	for _, actor := range w.actors {
		w.tickActor(actor, playerCenter, now)
	}

	w.enforceInvariants()
}

// tickActor runs one actor's proximity tick, isolating panics so one failing
// actor cannot starve the rest of the frame.
func (w *World) tickActor(actor *Actor, playerCenter core.Vec, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			if w.diag != nil {
				w.diag.RecordActorFailure(actor.ID(), r)
			}
		}
	}()

	res := actor.Tick(playerCenter, now)
	if !res.Changed {
		return
	}

	switch res.State {
	case StateTriggered:
		w.publish(ActorEnteredEvent{
			ActorID: actor.ID(),
			Action:  actor.Profile().EnterAction,
			At:      now,
		})
	case StateIdle:
		w.publish(ActorExitedEvent{
			ActorID: actor.ID(),
			Action:  actor.Profile().ExitAction,
			At:      now,
		})
	}
}

// enforceInvariants verifies that the committed player position honors the
// collision invariants. A violation indicates a defect in the collision
// engine or movement controller; it is surfaced via diagnostics and then
// clamped so an interactive session keeps running.
func (w *World) enforceInvariants() {
	bounds := w.player.Bounds()

	if !w.bounds.ContainsRect(bounds) {
		if w.diag != nil {
			w.diag.RecordInvariantClamp(w.player.ID(), fmt.Sprintf("bounds %+v outside world", bounds))
		}
		w.player.SetPosition(bounds.X, bounds.Y) // SetPosition re-clamps
	}

	for _, o := range w.obstacles {
		if w.player.Bounds().Intersects(o) {
			if w.diag != nil {
				w.diag.RecordInvariantClamp(w.player.ID(), fmt.Sprintf("bounds %+v overlap obstacle %+v", w.player.Bounds(), o))
			}
			prev := w.player.PreviousPosition()
			w.player.SetPosition(prev.X, prev.Y)
			break
		}
	}
}

// ReplaceObstacles swaps the whole obstacle set, for debug tooling. The swap
// is only legal between frames (loop not running); the new set is validated
// the same way as at construction.
func (w *World) ReplaceObstacles(obstacles []core.Rect) error {
	if err := validateObstacles(obstacles, w.bounds); err != nil {
		return err
	}
	w.obstacles = append([]core.Rect(nil), obstacles...)
	return nil
}

func (w *World) publish(ev Event) {
	if w.bus != nil {
		w.bus.Publish(ev)
	}
}
