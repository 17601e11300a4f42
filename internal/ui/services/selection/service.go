package selection

import (
	"fuzzpick/internal/domain"
	"fuzzpick/internal/eventbus"
)

// Service handles selection logic. Candidates are tracked by value, so
// a selection survives being filtered out of the visible match list.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: make(map[string]bool),
		},
		bus: bus,
	}
}

// Toggle flips the selection state of a candidate
func (s *Service) Toggle(value string) {
	if s.state.Selected[value] {
		delete(s.state.Selected, value)
		s.removeFromOrder(value)
	} else {
		s.state.Selected[value] = true
		s.state.Order = append(s.state.Order, value)
	}

	s.bus.Publish(domain.SelectionChangedEvent{
		Value:    value,
		Selected: s.state.Selected[value],
		Total:    len(s.state.Selected),
	})
}

// IsSelected checks if a candidate is selected
func (s *Service) IsSelected(value string) bool {
	return s.state.Selected[value]
}

// GetSelected returns the selected candidates in toggle order
func (s *Service) GetSelected() []string {
	if len(s.state.Order) == 0 {
		return nil
	}
	selected := make([]string, len(s.state.Order))
	copy(selected, s.state.Order)
	return selected
}

// GetSelectedSet returns the live membership set, for render-time
// lookups only
func (s *Service) GetSelectedSet() map[string]bool {
	return s.state.Selected
}

// GetCount returns the number of selected candidates
func (s *Service) GetCount() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.state.Selected = make(map[string]bool)
	s.state.Order = nil
}

func (s *Service) removeFromOrder(value string) {
	for i, v := range s.state.Order {
		if v == value {
			s.state.Order = append(s.state.Order[:i], s.state.Order[i+1:]...)
			return
		}
	}
}
