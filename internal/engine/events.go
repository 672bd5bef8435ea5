package engine

import "time"

// EventKind identifies a notification category on the bus.
type EventKind string

const (
	EventActorEntered EventKind = "actor_entered"
	EventActorExited  EventKind = "actor_exited"
	EventMoveBlocked  EventKind = "move_blocked"
)

// Event is a discrete notification emitted by the simulation and consumed by
// the feedback layer (audio, status line). Delivery is synchronous within the
// frame that produced it, at most once per edge per frame.
type Event interface {
	Kind() EventKind
}

// ActorEnteredEvent fires once when the player enters an actor's interaction
// radius. Action carries the actor's configured enter action name.
type ActorEnteredEvent struct {
	ActorID string
	Action  string
	At      time.Time
}

// Kind implements Event.
func (ActorEnteredEvent) Kind() EventKind { return EventActorEntered }

// ActorExitedEvent fires once when the player leaves an actor's interaction
// radius. Action carries the actor's configured exit action name and may be
// empty for profiles without an exit side effect.
type ActorExitedEvent struct {
	ActorID string
	Action  string
	At      time.Time
}

// Kind implements Event.
func (ActorExitedEvent) Kind() EventKind { return EventActorExited }

// MoveBlockedEvent fires, debounced by the bump cooldown, when a non-zero
// movement intent produced no displacement.
type MoveBlockedEvent struct {
	PlayerID string
	BlockedX bool
	BlockedY bool
	At       time.Time
}

// Kind implements Event.
func (MoveBlockedEvent) Kind() EventKind { return EventMoveBlocked }

// Handler consumes one event.
type Handler func(Event)

// Bus is an explicit publish/subscribe fan-out: a mapping from event kind to
// an ordered list of subscribers, constructed once per session. It is not
// safe for concurrent use; the simulation is single-threaded and the bus is
// only touched from the frame loop.
type Bus struct {
	subs map[EventKind][]Handler
	diag *Diagnostics
}

// NewBus creates an empty bus. Subscriber panics are counted against diag,
// which may be nil.
func NewBus(diag *Diagnostics) *Bus {
	return &Bus{
		subs: make(map[EventKind][]Handler),
		diag: diag,
	}
}

// Subscribe appends a handler to the ordered subscriber list for kind.
func (b *Bus) Subscribe(kind EventKind, h Handler) {
	if h == nil {
		return
	}
	b.subs[kind] = append(b.subs[kind], h)
}

// Publish delivers the event to every subscriber of its kind, in subscription
// order, synchronously. A panicking subscriber is isolated and recorded; the
// remaining subscribers and the frame that published the event continue.
func (b *Bus) Publish(ev Event) {
	for _, h := range b.subs[ev.Kind()] {
		b.deliver(h, ev)
	}
}

func (b *Bus) deliver(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			if b.diag != nil {
				b.diag.RecordSinkPanic(ev.Kind(), r)
			}
		}
	}()
	h(ev)
}
