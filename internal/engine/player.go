package engine

import (
	"time"

	"github.com/mkravets/yardwalk/internal/core"
)

// Player is the player-controlled entity: the base spatial model plus facing
// direction, movement speed and the previous-frame position for movement
// delta queries. It is mutated only by AttemptMove, once per frame.
type Player struct {
	Entity

	facing       core.Direction
	speed        float64 // world units per second
	prevPos      core.Vec
	lastBumpAt   time.Time
	bumpCooldown time.Duration
}

// MoveOutcome reports what a movement attempt did.
type MoveOutcome struct {
	Moved    bool // any displacement was committed
	BlockedX bool
	BlockedY bool
	// Bumped is set when a non-zero intent produced no displacement and the
	// bump cooldown had elapsed; the caller publishes a blocked notification.
	Bumped bool
}

// NewPlayer creates the player entity. Speed is in world units per second;
// bumpCooldown is the minimum interval between blocked-move notifications.
func NewPlayer(id string, x, y, w, h, speed float64, world core.Rect, bumpCooldown time.Duration) (*Player, error) {
	e, err := NewEntity(id, KindPlayer, x, y, w, h, world)
	if err != nil {
		return nil, err
	}
	p := &Player{
		Entity:       *e,
		facing:       core.DirectionDown,
		speed:        speed,
		bumpCooldown: bumpCooldown,
	}
	p.prevPos = p.Position()
	return p, nil
}

// Facing returns the player's current facing direction.
func (p *Player) Facing() core.Direction {
	return p.facing
}

// Speed returns the player's movement speed in world units per second.
func (p *Player) Speed() float64 {
	return p.speed
}

// PreviousPosition returns the position committed by the previous frame's
// movement attempt.
func (p *Player) PreviousPosition() core.Vec {
	return p.prevPos
}

// AttemptMove turns an abstract input intent into a movement attempt against
// the obstacle set. The candidate displacement is the intent scaled by speed
// and the frame's elapsed time, resolved by the collision engine and
// committed through SetPosition (which re-clamps to world bounds as a second
// invariant layer). Facing updates unconditionally, even when movement is
// fully blocked.
//
// On a malformed collision query the whole move is rejected and the error
// returned; the player does not change position.
func (p *Player) AttemptMove(in core.Intent, obstacles []core.Rect, dt time.Duration, now time.Time) (MoveOutcome, error) {
	in = in.Clamped()
	if in.Facing != core.DirectionNone {
		p.facing = in.Facing
	}
	p.prevPos = p.Position()

	if !in.Moving() {
		return MoveOutcome{}, nil
	}

	step := p.speed * dt.Seconds()
	dx := float64(in.DX) * step
	dy := float64(in.DY) * step

	res, err := ResolveMove(p.Bounds(), dx, dy, obstacles, p.WorldBounds())
	if err != nil {
		return MoveOutcome{BlockedX: res.BlockedX, BlockedY: res.BlockedY}, err
	}

	p.MoveBy(res.DX, res.DY)

	out := MoveOutcome{
		Moved:    res.DX != 0 || res.DY != 0,
		BlockedX: res.BlockedX,
		BlockedY: res.BlockedY,
	}
	if !out.Moved && res.FullyBlocked() {
		out.Bumped = p.debounceBump(now)
	}
	return out, nil
}

// debounceBump reports whether a blocked-move notification may fire now.
// Repeats within the cooldown window are suppressed so walking continuously
// into a wall produces one notification per window, not one per frame.
func (p *Player) debounceBump(now time.Time) bool {
	if !p.lastBumpAt.IsZero() && now.Sub(p.lastBumpAt) < p.bumpCooldown {
		return false
	}
	p.lastBumpAt = now
	return true
}
