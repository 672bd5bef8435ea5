package feedback

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkravets/yardwalk/internal/core"
	"github.com/mkravets/yardwalk/internal/engine"
)

// Sink consumes simulation events and turns them into notices. The latest
// notice is kept for the status bar; every event is also written to the
// session log. A nil logger disables logging but not notices.
type Sink struct {
	logger *log.Logger

	mu     sync.Mutex
	last   Notice
	lastAt time.Time
}

// NewSink creates a sink writing to the given logger. logger may be nil.
func NewSink(logger *log.Logger) *Sink {
	return &Sink{logger: logger}
}

// Attach subscribes the sink to all event kinds on the bus.
func (s *Sink) Attach(bus *engine.Bus) {
	bus.Subscribe(engine.EventActorEntered, s.handle)
	bus.Subscribe(engine.EventActorExited, s.handle)
	bus.Subscribe(engine.EventMoveBlocked, s.handle)
}

func (s *Sink) handle(ev engine.Event) {
	switch e := ev.(type) {
	case engine.ActorEnteredEvent:
		s.react(e.Action, e.ActorID, e.At)
	case engine.ActorExitedEvent:
		if e.Action == "" {
			return
		}
		s.react(e.Action, e.ActorID, e.At)
	case engine.MoveBlockedEvent:
		s.react("bump", e.PlayerID, e.At)
	}
}

func (s *Sink) react(action, actorID string, at time.Time) {
	a, ok := Lookup(action)
	if !ok {
		if s.logger != nil {
			s.logger.Warn("unknown feedback action", "action", action, "actor", actorID)
		}
		return
	}

	notice := a(actorID)
	if s.logger != nil {
		s.logger.Info(notice.Text, "action", action, "actor", actorID)
	}

	s.mu.Lock()
	s.last = notice
	s.lastAt = at
	s.mu.Unlock()
}

// LastNotice returns the most recent notice and when it happened.
// The zero Notice means nothing has happened yet.
func (s *Sink) LastNotice() (Notice, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.lastAt
}

// Clear drops the current notice, typically after it has aged off screen.
func (s *Sink) Clear() {
	s.mu.Lock()
	s.last = Notice{Color: core.ColorDefault}
	s.lastAt = time.Time{}
	s.mu.Unlock()
}
