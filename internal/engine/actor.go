package engine

import (
	"fmt"
	"time"

	"github.com/mkravets/yardwalk/internal/core"
)

// BehaviorState is the discrete state of a proximity actor.
type BehaviorState int

const (
	StateIdle BehaviorState = iota
	StateTriggered
)

// String returns a human-readable name for the state.
func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// BehaviorProfile parameterizes an actor's reaction to the player. The state
// machine itself is uniform across actors; only the profile varies, which is
// how one actor (the mailbox) gets a different radius and a different
// side-effect target than the dogs without any special-casing.
type BehaviorProfile struct {
	// InteractionRadius is the center-to-center distance below which the
	// actor triggers.
	InteractionRadius float64
	// EnterAction and ExitAction name the feedback actions emitted on the
	// corresponding transition. Resolution of the names is the notification
	// consumer's business.
	EnterAction string
	ExitAction  string
	// AnimationDuration scales AnimationProgress after a transition.
	AnimationDuration time.Duration
}

// validate reports profile configuration errors.
func (p BehaviorProfile) validate() error {
	if p.InteractionRadius <= 0 {
		return fmt.Errorf("interaction radius %g must be positive", p.InteractionRadius)
	}
	if p.EnterAction == "" {
		return fmt.Errorf("enter action must be set")
	}
	return nil
}

// Actor is an autonomous entity that watches the player's distance each tick
// and drives a two-state machine with edge-triggered side effects. It is
// mutated only by Tick, once per frame.
type Actor struct {
	Entity

	profile        BehaviorProfile
	state          BehaviorState
	triggered      bool // debounce latch; true iff state == StateTriggered
	stateChangedAt time.Time
}

// NewActor creates a proximity actor with the given behavior profile.
func NewActor(id string, kind EntityKind, x, y, w, h float64, world core.Rect, profile BehaviorProfile) (*Actor, error) {
	if err := profile.validate(); err != nil {
		return nil, fmt.Errorf("engine: actor %q: %w", id, err)
	}
	e, err := NewEntity(id, kind, x, y, w, h, world)
	if err != nil {
		return nil, err
	}
	return &Actor{
		Entity:  *e,
		profile: profile,
		state:   StateIdle,
	}, nil
}

// Profile returns the actor's behavior profile.
func (a *Actor) Profile() BehaviorProfile {
	return a.profile
}

// State returns the actor's current behavior state.
func (a *Actor) State() BehaviorState {
	return a.state
}

// TickResult reports whether a tick produced a transition.
type TickResult struct {
	Changed bool
	State   BehaviorState
}

// Tick evaluates the actor's distance to the player and advances the state
// machine. Transitions are edge-triggered: entering fires exactly once when
// the distance drops below the interaction radius and cannot fire again until
// the distance has risen to or above the radius. An invalid player position
// holds the current state rather than transitioning.
func (a *Actor) Tick(playerCenter core.Vec, now time.Time) TickResult {
	if !playerCenter.Finite() {
		return TickResult{State: a.state}
	}

	within := a.Center().DistanceTo(playerCenter) < a.profile.InteractionRadius

	switch {
	case within && !a.triggered:
		a.triggered = true
		a.state = StateTriggered
		a.stateChangedAt = now
		return TickResult{Changed: true, State: a.state}
	case !within && a.triggered:
		a.triggered = false
		a.state = StateIdle
		a.stateChangedAt = now
		return TickResult{Changed: true, State: a.state}
	default:
		return TickResult{State: a.state}
	}
}

// StateChangedAt returns the time of the last transition; zero if the actor
// has never transitioned.
func (a *Actor) StateChangedAt() time.Time {
	return a.stateChangedAt
}

// AnimationProgress returns how far the transition animation has advanced at
// the given time, in [0, 1]. Before any transition, and for profiles without
// an animation duration, the animation is complete.
func (a *Actor) AnimationProgress(now time.Time) float64 {
	if a.stateChangedAt.IsZero() || a.profile.AnimationDuration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.stateChangedAt)
	return core.Clamp(float64(elapsed)/float64(a.profile.AnimationDuration), 0, 1)
}
