package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkravets/yardwalk/internal/core"
)

// LoopPhase is the lifecycle state of the frame loop.
type LoopPhase int

const (
	PhaseStopped LoopPhase = iota
	PhaseRunning
	PhasePaused
)

// String returns a human-readable name for the phase.
func (p LoopPhase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ErrLoopStopped is returned by Step after the loop has been stopped.
var ErrLoopStopped = errors.New("engine: loop stopped")

// Loop drives the world once per display frame using wall-clock delta time:
// update, then render. The host owns the frame-scheduling primitive (the TUI
// tick) and calls Step each frame; the loop owns the start/pause/resume
// lifecycle and guarantees that no simulation frame executes after a pause
// request issued before that frame.
//
// There is no fixed timestep: Step receives whatever frame rate the host
// provides and all time-sensitive logic downstream is expressed in elapsed
// wall-clock time.
type Loop struct {
	world     *World
	render    func()
	diag      *Diagnostics
	phase     LoopPhase
	lastFrame time.Time
}

// NewLoop creates a loop in the Stopped phase. render is invoked after each
// update and may be nil; a failing render consumer never aborts the loop.
func NewLoop(world *World, render func(), diag *Diagnostics) *Loop {
	return &Loop{
		world:  world,
		render: render,
		diag:   diag,
	}
}

// Phase returns the loop's current lifecycle phase.
func (l *Loop) Phase() LoopPhase {
	return l.phase
}

// World returns the world the loop drives.
func (l *Loop) World() *World {
	return l.world
}

// Start transitions Stopped or Paused to Running. Idempotent while running.
// The next Step measures its delta time from now, so paused wall-clock time
// never leaks into the simulation.
func (l *Loop) Start(now time.Time) {
	if l.phase == PhaseRunning {
		return
	}
	l.phase = PhaseRunning
	l.lastFrame = now
}

// Pause transitions Running to Paused. Effective immediately: any Step after
// a pause request is a no-op until resumed.
func (l *Loop) Pause() {
	if l.phase == PhaseRunning {
		l.phase = PhasePaused
	}
}

// Resume transitions Paused to Running. Calling it while already running
// does not double-schedule anything.
func (l *Loop) Resume(now time.Time) {
	if l.phase == PhasePaused {
		l.Start(now)
	}
}

// Stop terminates the loop. Terminal: a stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.phase = PhaseStopped
}

// ReplaceObstacles swaps the world's obstacle set. Only legal between frames:
// while the loop is running the swap is rejected, pause or stop first.
func (l *Loop) ReplaceObstacles(obstacles []core.Rect) error {
	if l.phase == PhaseRunning {
		return errors.New("engine: cannot swap obstacles while running")
	}
	return l.world.ReplaceObstacles(obstacles)
}

// Step executes one frame: compute the elapsed wall-clock delta, update the
// world with the frame's input intent, render, and record the frame time.
// Outside the Running phase it does nothing and reports whether the host
// should keep scheduling frames.
func (l *Loop) Step(now time.Time, in core.Intent) error {
	switch l.phase {
	case PhaseStopped:
		return ErrLoopStopped
	case PhasePaused:
		return nil
	}

	dt := now.Sub(l.lastFrame)
	if dt < 0 {
		// Host clock went backwards; treat as an empty frame rather than
		// feeding a negative delta into movement scaling.
		dt = 0
	}
	l.lastFrame = now

	if err := l.stepWorld(in, dt, now); err != nil {
		// A failure in the loop's own bookkeeping is fatal to the run;
		// stop scheduling cleanly.
		l.phase = PhaseStopped
		return fmt.Errorf("engine: frame update failed: %w", err)
	}

	l.renderFrame()
	return nil
}

func (l *Loop) stepWorld(in core.Intent, dt time.Duration, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update panicked: %v", r)
		}
	}()
	l.world.Update(in, dt, now)
	return nil
}

// renderFrame invokes the render consumer, isolating its failures: the loop
// continues on the next frame regardless.
func (l *Loop) renderFrame() {
	if l.render == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if l.diag != nil {
				l.diag.RecordSinkPanic("render", r)
			}
		}
	}()
	l.render()
}
