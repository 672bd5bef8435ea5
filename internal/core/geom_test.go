package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching corners do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersectsOrTouches(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	if !a.IntersectsOrTouches(NewRect(10, 0, 10, 10)) {
		t.Error("shared vertical edge should count as touching")
	}
	if !a.IntersectsOrTouches(NewRect(0, 10, 10, 10)) {
		t.Error("shared horizontal edge should count as touching")
	}
	if a.IntersectsOrTouches(NewRect(10.5, 0, 10, 10)) {
		t.Error("separated rects should not touch")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"left of rect", 5, 15, false},
		{"below rect", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	world := NewRect(0, 0, 100, 100)

	if !world.ContainsRect(NewRect(10, 10, 20, 20)) {
		t.Error("interior rect should be contained")
	}
	if !world.ContainsRect(NewRect(0, 0, 100, 100)) {
		t.Error("rect touching all edges should be contained")
	}
	if world.ContainsRect(NewRect(-1, 0, 10, 10)) {
		t.Error("rect crossing the left edge should not be contained")
	}
	if world.ContainsRect(NewRect(95, 0, 10, 10)) {
		t.Error("rect crossing the right edge should not be contained")
	}
}

func TestRectDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"valid", NewRect(0, 0, 10, 10), false},
		{"zero width", NewRect(0, 0, 0, 10), true},
		{"negative width", NewRect(0, 0, -5, 10), true},
		{"negative height", NewRect(0, 0, 10, -5), true},
		{"NaN position", NewRect(math.NaN(), 0, 10, 10), true},
		{"infinite size", NewRect(0, 0, math.Inf(1), 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Degenerate(); got != tc.expected {
				t.Errorf("Degenerate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("normalized length = %v, expected 1", v.Length())
	}

	zero := Vec{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to itself, got %+v", zero)
	}
}

func TestVecDistanceTo(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}

	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo() = %v, expected 5", d)
	}
	if d := b.DistanceTo(a); d != 5 {
		t.Errorf("DistanceTo() (reversed) = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %v, expected 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v, expected 10", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, expected 5", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, expected 5", got)
	}
	if got := Lerp(0, 10, -1); got != 0 {
		t.Errorf("Lerp should clamp t below 0, got %v", got)
	}
	if got := Lerp(0, 10, 2); got != 10 {
		t.Errorf("Lerp should clamp t above 1, got %v", got)
	}
}
