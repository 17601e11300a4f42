package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"fuzzpick/internal/domain"
)

// Re-export domain types for convenience
type Event = domain.Event
type EventType = domain.EventType

// Event type constants
const (
	EventPatternChanged   = domain.EventPatternChanged
	EventMatchesUpdated   = domain.EventMatchesUpdated
	EventCursorMoved      = domain.EventCursorMoved
	EventSelectionChanged = domain.EventSelectionChanged
	EventResized          = domain.EventResized
	EventConfirmed        = domain.EventConfirmed
)

// Re-export domain event types
type PatternChangedEvent = domain.PatternChangedEvent
type MatchesUpdatedEvent = domain.MatchesUpdatedEvent
type CursorMovedEvent = domain.CursorMovedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ResizedEvent = domain.ResizedEvent
type ConfirmedEvent = domain.ConfirmedEvent

// EventHandler is a function that handles domain events
type EventHandler func(Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

// bus is the concrete implementation of EventBus. Dispatch is
// synchronous and in subscription order: the selection session is
// single-threaded and handlers are observers, so every event is
// delivered on the publisher's goroutine before Publish returns.
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscriber
	all      []subscriber
}

type subscriber struct {
	id      int
	handler EventHandler
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscriber),
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]subscriber, 0, len(b.handlers[event.Type()])+len(b.all))
	subs = append(subs, b.handlers[event.Type()]...)
	subs = append(subs, b.all...)
	b.mu.RUnlock()

	for _, s := range subs {
		invoke(s.handler, event)
	}
}

// invoke calls a handler, recovering panics so a broken observer
// cannot take down the session
func invoke(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe registers a handler for events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], id)
	}
}

// SubscribeAll registers a handler for every event type.
// Returns an unsubscribe function.
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

func remove(subs []subscriber, id int) []subscriber {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}
