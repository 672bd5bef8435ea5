package engine

import (
	"math"
	"testing"
	"time"

	"github.com/mkravets/yardwalk/internal/core"
)

func testActor(t *testing.T, radius float64) *Actor {
	t.Helper()
	world := core.NewRect(0, 0, 1000, 1000)
	a, err := NewActor("rex", KindNPC, 290, 390, 20, 20, world, BehaviorProfile{
		InteractionRadius: radius,
		EnterAction:       "bark",
		ExitAction:        "calm",
		AnimationDuration: 600 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewActor() error = %v", err)
	}
	return a
}

func TestActorProfileValidation(t *testing.T) {
	world := core.NewRect(0, 0, 100, 100)

	_, err := NewActor("a", KindNPC, 10, 10, 10, 10, world, BehaviorProfile{InteractionRadius: 0, EnterAction: "bark"})
	if err == nil {
		t.Error("zero radius should be rejected")
	}

	_, err = NewActor("a", KindNPC, 10, 10, 10, 10, world, BehaviorProfile{InteractionRadius: 50})
	if err == nil {
		t.Error("missing enter action should be rejected")
	}
}

func TestActorEdgeTriggeredEntry(t *testing.T) {
	// Actor center is (300, 400) with radius 100.
	a := testActor(t, 100)
	now := time.Now()
	near := core.Vec{X: 300, Y: 310} // distance 90

	res := a.Tick(near, now)
	if !res.Changed || res.State != StateTriggered {
		t.Fatalf("first tick inside radius: %+v, expected triggered transition", res)
	}

	// Repeated ticks inside the radius produce no further transitions.
	for i := 0; i < 10; i++ {
		res = a.Tick(near, now.Add(time.Duration(i)*16*time.Millisecond))
		if res.Changed {
			t.Fatalf("tick %d re-fired while player stayed within radius", i)
		}
		if res.State != StateTriggered {
			t.Fatalf("tick %d state = %v, expected triggered", i, res.State)
		}
	}
}

func TestActorEnterExitReenter(t *testing.T) {
	// End-to-end: enter at distance 90, leave to 110, re-enter at 80.
	a := testActor(t, 100)
	now := time.Now()

	transitions := 0
	step := func(center core.Vec, at time.Time) TickResult {
		res := a.Tick(center, at)
		if res.Changed {
			transitions++
		}
		return res
	}

	res := step(core.Vec{X: 300, Y: 310}, now) // distance 90
	if res.State != StateTriggered {
		t.Fatalf("enter: state = %v", res.State)
	}
	res = step(core.Vec{X: 300, Y: 290}, now.Add(time.Second)) // distance 110
	if res.State != StateIdle || !res.Changed {
		t.Fatalf("exit: %+v", res)
	}
	res = step(core.Vec{X: 300, Y: 320}, now.Add(2*time.Second)) // distance 80
	if res.State != StateTriggered || !res.Changed {
		t.Fatalf("re-enter: %+v", res)
	}
	if transitions != 3 {
		t.Errorf("transitions = %d, expected 3", transitions)
	}
}

func TestActorExactRadiusIsOutside(t *testing.T) {
	a := testActor(t, 100)
	now := time.Now()

	// Distance exactly equal to the radius does not trigger.
	res := a.Tick(core.Vec{X: 300, Y: 300}, now) // distance 100
	if res.Changed || res.State != StateIdle {
		t.Errorf("distance == radius should stay idle, got %+v", res)
	}

	// And forces an exit when already triggered.
	a.Tick(core.Vec{X: 300, Y: 350}, now)
	res = a.Tick(core.Vec{X: 300, Y: 300}, now.Add(time.Second))
	if !res.Changed || res.State != StateIdle {
		t.Errorf("distance == radius should exit, got %+v", res)
	}
}

func TestActorInvalidPlayerPositionHoldsState(t *testing.T) {
	a := testActor(t, 100)
	now := time.Now()

	a.Tick(core.Vec{X: 300, Y: 310}, now)
	if a.State() != StateTriggered {
		t.Fatal("setup: actor should be triggered")
	}

	res := a.Tick(core.Vec{X: math.NaN(), Y: 310}, now.Add(time.Second))
	if res.Changed || res.State != StateTriggered {
		t.Errorf("invalid player position should hold state, got %+v", res)
	}
}

func TestActorAnimationProgress(t *testing.T) {
	a := testActor(t, 100)
	now := time.Now()

	// Before any transition the animation is complete.
	if got := a.AnimationProgress(now); got != 1 {
		t.Errorf("AnimationProgress before transition = %v, expected 1", got)
	}

	a.Tick(core.Vec{X: 300, Y: 310}, now)

	if got := a.AnimationProgress(now); got != 0 {
		t.Errorf("AnimationProgress at transition = %v, expected 0", got)
	}
	if got := a.AnimationProgress(now.Add(300 * time.Millisecond)); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("AnimationProgress halfway = %v, expected 0.5", got)
	}
	if got := a.AnimationProgress(now.Add(2 * time.Second)); got != 1 {
		t.Errorf("AnimationProgress after duration = %v, expected 1", got)
	}
}

func TestActorStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateTriggered.String() != "triggered" {
		t.Error("unexpected state names")
	}
}
