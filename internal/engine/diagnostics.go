package engine

import (
	"github.com/charmbracelet/log"
)

// Diagnostics owns the session's defect counters: per-actor tick failures,
// notification subscriber panics and invariant clamps. It is constructed once
// at session start and injected where needed, replacing process-wide mutable
// counters. Not safe for concurrent use; the simulation is single-threaded.
type Diagnostics struct {
	logger *log.Logger

	actorTickFailures map[string]int
	sinkPanics        int
	invariantClamps   int
	moveErrors        int
}

// NewDiagnostics creates a diagnostics component. logger may be nil to count
// silently.
func NewDiagnostics(logger *log.Logger) *Diagnostics {
	return &Diagnostics{
		logger:            logger,
		actorTickFailures: make(map[string]int),
	}
}

// RecordActorFailure counts a panic raised while ticking a single actor.
// Other actors in the same frame are unaffected.
func (d *Diagnostics) RecordActorFailure(actorID string, cause any) {
	d.actorTickFailures[actorID]++
	if d.logger != nil {
		d.logger.Error("actor tick failed", "actor", actorID, "cause", cause)
	}
}

// RecordSinkPanic counts a panic raised by a notification subscriber.
func (d *Diagnostics) RecordSinkPanic(kind EventKind, cause any) {
	d.sinkPanics++
	if d.logger != nil {
		d.logger.Error("notification subscriber panicked", "event", string(kind), "cause", cause)
	}
}

// RecordInvariantClamp counts a post-commit invariant violation that was
// clamped away. These indicate a collision engine or movement controller
// defect and are surfaced loudly.
func (d *Diagnostics) RecordInvariantClamp(entityID string, detail string) {
	d.invariantClamps++
	if d.logger != nil {
		d.logger.Error("invariant violation clamped", "entity", entityID, "detail", detail)
	}
}

// RecordMoveError counts a rejected malformed movement query.
func (d *Diagnostics) RecordMoveError(err error) {
	d.moveErrors++
	if d.logger != nil {
		d.logger.Error("movement rejected", "err", err)
	}
}

// Snapshot is a point-in-time copy of the diagnostics counters.
type Snapshot struct {
	ActorTickFailures map[string]int
	SinkPanics        int
	InvariantClamps   int
	MoveErrors        int
}

// Snapshot returns a copy of the current counters.
func (d *Diagnostics) Snapshot() Snapshot {
	failures := make(map[string]int, len(d.actorTickFailures))
	for id, n := range d.actorTickFailures {
		failures[id] = n
	}
	return Snapshot{
		ActorTickFailures: failures,
		SinkPanics:        d.sinkPanics,
		InvariantClamps:   d.invariantClamps,
		MoveErrors:        d.moveErrors,
	}
}

// Clean reports whether no defects have been recorded.
func (s Snapshot) Clean() bool {
	return len(s.ActorTickFailures) == 0 && s.SinkPanics == 0 &&
		s.InvariantClamps == 0 && s.MoveErrors == 0
}
