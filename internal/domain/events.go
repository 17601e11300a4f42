package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPatternChanged   EventType = "PatternChanged"
	EventMatchesUpdated   EventType = "MatchesUpdated"
	EventCursorMoved      EventType = "CursorMoved"
	EventSelectionChanged EventType = "SelectionChanged"
	EventResized          EventType = "Resized"
	EventConfirmed        EventType = "Confirmed"
)

// Event is the interface for all domain events
type Event interface {
	Type() EventType
}

// PatternChangedEvent is emitted after a pattern edit has been applied
type PatternChangedEvent struct {
	Pattern string
}

func (e PatternChangedEvent) Type() EventType { return EventPatternChanged }

// MatchesUpdatedEvent is emitted after the match list has been reranked
type MatchesUpdatedEvent struct {
	Pattern string
	Count   int
}

func (e MatchesUpdatedEvent) Type() EventType { return EventMatchesUpdated }

// CursorMovedEvent is emitted when the viewport cursor or scroll offset changes
type CursorMovedEvent struct {
	Offset int
	Index  int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// SelectionChangedEvent is emitted when a candidate is toggled
type SelectionChangedEvent struct {
	Value    string
	Selected bool
	Total    int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ResizedEvent is emitted when the terminal dimensions change
type ResizedEvent struct {
	Width  int
	Height int
}

func (e ResizedEvent) Type() EventType { return EventResized }

// ConfirmedEvent is emitted once when the session terminates with a result
type ConfirmedEvent struct {
	Result []string
}

func (e ConfirmedEvent) Type() EventType { return EventConfirmed }
