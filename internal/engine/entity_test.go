package engine

import (
	"testing"

	"github.com/mkravets/yardwalk/internal/core"
)

func TestNewEntityValidation(t *testing.T) {
	world := core.NewRect(0, 0, 100, 100)

	tests := []struct {
		name    string
		id      string
		w, h    float64
		wantErr bool
	}{
		{"valid", "e1", 10, 10, false},
		{"empty id", "", 10, 10, true},
		{"zero width", "e2", 0, 10, true},
		{"negative height", "e3", 10, -1, true},
		{"wider than world", "e4", 200, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEntity(tc.id, KindNPC, 10, 10, tc.w, tc.h, world)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewEntity() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestEntitySetPositionClamps(t *testing.T) {
	world := core.NewRect(0, 0, 100, 100)
	e, err := NewEntity("e1", KindNPC, 10, 10, 20, 10, world)
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	tests := []struct {
		name   string
		x, y   float64
		wantX  float64
		wantY  float64
	}{
		{"negative x", -5, 10, 0, 10},
		{"negative y", 10, -5, 10, 0},
		{"x past right edge", 95, 10, 80, 10},
		{"y past bottom edge", 10, 95, 10, 90},
		{"inside", 40, 40, 40, 40},
		{"flush with right edge", 80, 10, 80, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e.SetPosition(tc.x, tc.y)
			pos := e.Position()
			if pos.X != tc.wantX || pos.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", pos.X, pos.Y, tc.wantX, tc.wantY)
			}
			if !world.ContainsRect(e.Bounds()) {
				t.Errorf("bounds %+v left the world after SetPosition(%v, %v)", e.Bounds(), tc.x, tc.y)
			}
		})
	}
}

func TestEntityMoveBy(t *testing.T) {
	world := core.NewRect(0, 0, 100, 100)
	e, _ := NewEntity("e1", KindNPC, 50, 50, 10, 10, world)

	e.MoveBy(5, -5)
	if pos := e.Position(); pos.X != 55 || pos.Y != 45 {
		t.Errorf("position = %+v, expected (55, 45)", pos)
	}

	e.MoveBy(1000, 1000)
	if !world.ContainsRect(e.Bounds()) {
		t.Errorf("MoveBy should clamp to world bounds, got %+v", e.Bounds())
	}
}

func TestEntityQueries(t *testing.T) {
	world := core.NewRect(0, 0, 100, 100)
	a, _ := NewEntity("a", KindPlayer, 10, 10, 10, 10, world)
	b, _ := NewEntity("b", KindNPC, 40, 50, 10, 10, world)

	if c := a.Center(); c.X != 15 || c.Y != 15 {
		t.Errorf("Center() = %+v, expected (15, 15)", c)
	}

	// Centers (15,15) and (45,55): distance 50
	if d := a.DistanceTo(b); d != 50 {
		t.Errorf("DistanceTo() = %v, expected 50", d)
	}

	if a.OverlapsWith(b) {
		t.Error("distant entities should not overlap")
	}
	b.SetPosition(15, 15)
	if !a.OverlapsWith(b) {
		t.Error("entities sharing area should overlap")
	}
	b.SetPosition(20, 10)
	if a.OverlapsWith(b) {
		t.Error("touching edges should not count as overlap")
	}
}

func TestEntityKindString(t *testing.T) {
	kinds := map[EntityKind]string{
		KindPlayer:   "player",
		KindNPC:      "npc",
		KindObstacle: "obstacle",
		KindMailbox:  "mailbox",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, expected %q", k, got, want)
		}
	}
}
