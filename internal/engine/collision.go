package engine

import (
	"errors"
	"fmt"

	"github.com/mkravets/yardwalk/internal/core"
)

// ErrDegenerateRect is returned when a collision query involves a rectangle
// with non-positive dimensions or non-finite coordinates. This is a
// configuration or programming error; the whole move is rejected.
var ErrDegenerateRect = errors.New("engine: degenerate rectangle")

// MoveResolution is the outcome of a collision query: the displacement that
// may legally be committed and which requested axes were rejected.
type MoveResolution struct {
	DX, DY   float64
	BlockedX bool
	BlockedY bool
}

// FullyBlocked reports whether a non-zero displacement request produced no
// legal movement at all.
func (r MoveResolution) FullyBlocked() bool {
	return r.DX == 0 && r.DY == 0 && (r.BlockedX || r.BlockedY)
}

// ResolveMove decides how much of the displacement (dx, dy) the body
// occupying bounds may commit against the static obstacle set.
//
// The full displacement is accepted when the target rectangle stays within
// the world and clears every obstacle. Otherwise the displacement is resolved
// per axis to allow wall sliding: the X component is tried alone first, then
// the Y component from wherever X ended up, so the committed position can
// never penetrate an obstacle even when both axes pass in isolation. Each
// rejected axis is clamped to zero and reported via BlockedX/BlockedY.
//
// Obstacle edges are solid: a move that would land flush against an obstacle
// the body was not already touching is rejected. World edges are not: the
// body may come flush with the world boundary but not cross it.
func ResolveMove(bounds core.Rect, dx, dy float64, obstacles []core.Rect, world core.Rect) (MoveResolution, error) {
	rejected := MoveResolution{BlockedX: dx != 0, BlockedY: dy != 0}

	if bounds.Degenerate() {
		return rejected, fmt.Errorf("body bounds %+v: %w", bounds, ErrDegenerateRect)
	}
	if world.Degenerate() {
		return rejected, fmt.Errorf("world bounds %+v: %w", world, ErrDegenerateRect)
	}
	for i, o := range obstacles {
		if o.Degenerate() {
			return rejected, fmt.Errorf("obstacle %d %+v: %w", i, o, ErrDegenerateRect)
		}
	}

	if dx == 0 && dy == 0 {
		return MoveResolution{}, nil
	}

	full := bounds.Translate(dx, dy)
	if moveLegal(full, bounds, obstacles, world) {
		return MoveResolution{DX: dx, DY: dy}, nil
	}

	var res MoveResolution
	pos := bounds
	if dx != 0 {
		if target := pos.Translate(dx, 0); moveLegal(target, pos, obstacles, world) {
			res.DX = dx
			pos = target
		} else {
			res.BlockedX = true
		}
	}
	if dy != 0 {
		if target := pos.Translate(0, dy); moveLegal(target, pos, obstacles, world) {
			res.DY = dy
		} else {
			res.BlockedY = true
		}
	}
	return res, nil
}

// moveLegal reports whether a body may move from current to target: the
// target must lie within the world and must neither overlap an obstacle nor
// establish new flush contact with one. Contact the body already had (e.g.
// sliding along a wall it rests against) does not block.
func moveLegal(target, current core.Rect, obstacles []core.Rect, world core.Rect) bool {
	if !world.ContainsRect(target) {
		return false
	}
	// Obstacle counts are small (tens); exhaustive scan is fine. A spatial
	// index would go here if that ever changes.
	for _, o := range obstacles {
		if target.Intersects(o) {
			return false
		}
		if target.IntersectsOrTouches(o) && !current.IntersectsOrTouches(o) {
			return false
		}
	}
	return true
}
