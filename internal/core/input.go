package core

// Direction is a facing direction for an entity.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Intent is the abstract movement input for a single simulation frame.
// DX and DY are each -1, 0 or 1; the platform layer builds an Intent from
// whatever input device it owns and the simulation consumes it without
// knowing the source. The zero value means "no input".
type Intent struct {
	DX, DY int
	// Facing, when not DirectionNone, updates the player's facing direction
	// even if the movement itself is blocked.
	Facing Direction
}

// Zero returns true if the intent carries no movement and no facing change.
func (in Intent) Zero() bool {
	return in.DX == 0 && in.DY == 0 && in.Facing == DirectionNone
}

// Moving returns true if the intent requests a displacement.
func (in Intent) Moving() bool {
	return in.DX != 0 || in.DY != 0
}

// Clamped returns a copy with DX and DY forced into {-1, 0, 1}.
func (in Intent) Clamped() Intent {
	out := in
	if out.DX > 1 {
		out.DX = 1
	} else if out.DX < -1 {
		out.DX = -1
	}
	if out.DY > 1 {
		out.DY = 1
	} else if out.DY < -1 {
		out.DY = -1
	}
	return out
}
