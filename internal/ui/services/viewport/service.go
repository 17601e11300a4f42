package viewport

import (
	"fuzzpick/internal/domain"
	"fuzzpick/internal/eventbus"
)

// Service handles all scrolling logic over the ranked match list. The
// best match sits at the bottom row, so "up" walks toward worse-ranked
// matches and Offset+Index is the list position under the cursor.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new viewport service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Offset:      0,
			Index:       0,
			VisibleRows: 22, // Default, replaced by the first resize
		},
		bus: bus,
	}
}

// GetOffset returns the current scroll offset
func (s *Service) GetOffset() int {
	return s.state.Offset
}

// GetIndex returns the cursor row within the visible frame
func (s *Service) GetIndex() int {
	return s.state.Index
}

// GetVisibleRows returns how many match rows fit above the pattern line
func (s *Service) GetVisibleRows() int {
	return s.state.VisibleRows
}

// GetPosition returns the match list position under the cursor
func (s *Service) GetPosition() int {
	return s.state.Offset + s.state.Index
}

// Resize updates the visible row budget for a new terminal height.
// Offset and index are left untouched; the next navigation or pattern
// edit re-validates them against the list.
func (s *Service) Resize(height int) {
	rows := height - reservedLines
	if rows < 1 {
		rows = 1
	}
	s.state.VisibleRows = rows
}

// Reset snaps the viewport back to the top-ranked matches after the
// match list was rebuilt for a new pattern
func (s *Service) Reset(matchCount int) {
	oldOffset, oldIndex := s.state.Offset, s.state.Index

	s.state.Offset = 0
	if matchCount == 0 {
		s.state.Index = 0
	} else if s.state.Index > matchCount-1 {
		s.state.Index = matchCount - 1
	}

	s.publishIfMoved(oldOffset, oldIndex)
}

// MoveUp moves the cursor one step toward worse-ranked matches,
// scrolling once the cursor hits the top of the frame
func (s *Service) MoveUp(matchCount int) {
	if matchCount == 0 || s.state.Offset+s.state.Index >= matchCount-1 {
		return
	}

	oldOffset, oldIndex := s.state.Offset, s.state.Index
	if s.state.Index < s.state.VisibleRows {
		s.state.Index++
	} else {
		s.state.Offset++
	}

	s.publishIfMoved(oldOffset, oldIndex)
}

// MoveDown moves the cursor one step back toward the best match
func (s *Service) MoveDown() {
	if s.state.Offset+s.state.Index == 0 {
		return
	}

	oldOffset, oldIndex := s.state.Offset, s.state.Index
	if s.state.Index > 0 {
		s.state.Index--
	} else {
		s.state.Offset--
	}

	s.publishIfMoved(oldOffset, oldIndex)
}

func (s *Service) publishIfMoved(oldOffset, oldIndex int) {
	if s.state.Offset == oldOffset && s.state.Index == oldIndex {
		return
	}
	s.bus.Publish(domain.CursorMovedEvent{
		Offset: s.state.Offset,
		Index:  s.state.Index,
	})
}
