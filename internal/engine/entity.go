// Package engine implements the yard simulation: the entity model, the
// collision engine, the player movement controller, the NPC proximity state
// machine and the frame loop that drives them. It contains no terminal or
// rendering dependencies; the platform layer reads its state each frame.
package engine

import (
	"fmt"

	"github.com/mkravets/yardwalk/internal/core"
)

// EntityKind tags the role of an entity in the world. It replaces reflected
// type identity in debug output and render decisions.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindNPC
	KindObstacle
	KindMailbox
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindObstacle:
		return "obstacle"
	case KindMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// Entity is the common spatial representation shared by the player and the
// proximity actors: a position, a size and a stable identity. Its position is
// always clamped so the full rectangle lies within the world bounds.
type Entity struct {
	id    string
	kind  EntityKind
	pos   core.Vec
	size  core.Vec
	world core.Rect
}

// NewEntity creates an entity at (x, y) with the given size, clamped into the
// world bounds. Degenerate sizes and non-finite coordinates are configuration
// errors and abort construction.
func NewEntity(id string, kind EntityKind, x, y, w, h float64, world core.Rect) (*Entity, error) {
	if id == "" {
		return nil, fmt.Errorf("engine: entity with empty id")
	}
	if world.Degenerate() {
		return nil, fmt.Errorf("engine: entity %q: degenerate world bounds %+v", id, world)
	}
	r := core.NewRect(x, y, w, h)
	if r.Degenerate() {
		return nil, fmt.Errorf("engine: entity %q: degenerate bounds %+v", id, r)
	}
	if w > world.W || h > world.H {
		return nil, fmt.Errorf("engine: entity %q: size %gx%g exceeds world %gx%g", id, w, h, world.W, world.H)
	}

	e := &Entity{
		id:    id,
		kind:  kind,
		size:  core.Vec{X: w, Y: h},
		world: world,
	}
	e.SetPosition(x, y)
	return e, nil
}

// ID returns the entity's stable identity.
func (e *Entity) ID() string {
	return e.id
}

// Kind returns the entity's role tag.
func (e *Entity) Kind() EntityKind {
	return e.kind
}

// Position returns the current top-left corner.
func (e *Entity) Position() core.Vec {
	return e.pos
}

// Size returns the entity's width and height.
func (e *Entity) Size() core.Vec {
	return e.size
}

// Bounds returns the entity's current rectangle.
func (e *Entity) Bounds() core.Rect {
	return core.Rect{X: e.pos.X, Y: e.pos.Y, W: e.size.X, H: e.size.Y}
}

// Center returns the midpoint of the entity's rectangle.
func (e *Entity) Center() core.Vec {
	return e.Bounds().Center()
}

// DistanceTo returns the Euclidean distance between entity centers.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Center().DistanceTo(other.Center())
}

// OverlapsWith reports whether two entities' rectangles overlap strictly.
func (e *Entity) OverlapsWith(other *Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// SetPosition moves the entity, clamping so its full rectangle stays within
// the world bounds regardless of the input.
func (e *Entity) SetPosition(x, y float64) {
	e.pos.X = core.Clamp(x, e.world.X, e.world.Right()-e.size.X)
	e.pos.Y = core.Clamp(y, e.world.Y, e.world.Bottom()-e.size.Y)
}

// MoveBy shifts the entity by (dx, dy) with the same clamping as SetPosition.
func (e *Entity) MoveBy(dx, dy float64) {
	e.SetPosition(e.pos.X+dx, e.pos.Y+dy)
}

// WorldBounds returns the world rectangle the entity is confined to.
func (e *Entity) WorldBounds() core.Rect {
	return e.world
}
