package fuzzpick

import (
	"fuzzpick/internal/domain"
)

// Re-export session events so hook callers can inspect them without
// reaching into internal packages
type Event = domain.Event
type EventType = domain.EventType

const (
	EventPatternChanged   = domain.EventPatternChanged
	EventMatchesUpdated   = domain.EventMatchesUpdated
	EventCursorMoved      = domain.EventCursorMoved
	EventSelectionChanged = domain.EventSelectionChanged
	EventResized          = domain.EventResized
	EventConfirmed        = domain.EventConfirmed
)

type PatternChangedEvent = domain.PatternChangedEvent
type MatchesUpdatedEvent = domain.MatchesUpdatedEvent
type CursorMovedEvent = domain.CursorMovedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ResizedEvent = domain.ResizedEvent
type ConfirmedEvent = domain.ConfirmedEvent
