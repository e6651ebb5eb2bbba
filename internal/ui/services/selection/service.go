package selection

import (
	"fmt"

	"scriptpick/internal/domain"
	"scriptpick/internal/logic"
	"scriptpick/internal/ui/services/events"
)

// Service keeps the filtered script list and the selection index consistent
type Service struct {
	state *State
	store logic.ScriptStore
	bus   events.EventBus
}

// NewService creates a selection list showing every script in store
func NewService(store logic.ScriptStore, bus events.EventBus) *Service {
	return &Service{
		state: &State{
			Visible: store.Entries(),
		},
		store: store,
		bus:   bus,
	}
}

// ApplyFilter recomputes the visible entries for query.
// The selection index is left alone; callers reset it when the query changed.
func (s *Service) ApplyFilter(query string) {
	s.state.Visible = s.store.Filter(query)

	s.bus.Publish(FilterAppliedEvent{
		Query:      query,
		MatchCount: len(s.state.Visible),
	})
}

// Reset highlights the first visible entry
func (s *Service) Reset() {
	s.moveTo(0)
}

// SelectNext moves down one entry, wrapping to the top
func (s *Service) SelectNext() {
	if len(s.state.Visible) == 0 {
		return
	}
	s.moveTo((s.state.Index + 1) % len(s.state.Visible))
}

// SelectPrevious moves up one entry, wrapping to the bottom
func (s *Service) SelectPrevious() {
	if len(s.state.Visible) == 0 {
		return
	}
	if s.state.Index == 0 {
		s.moveTo(len(s.state.Visible) - 1)
		return
	}
	s.moveTo(s.state.Index - 1)
}

// CurrentSelectionName returns the highlighted script name, or false when
// nothing matches. An index outside a non-empty list is a programming error.
func (s *Service) CurrentSelectionName() (string, bool) {
	if len(s.state.Visible) == 0 {
		return "", false
	}
	if s.state.Index < 0 || s.state.Index >= len(s.state.Visible) {
		panic(fmt.Sprintf("selection: index %d out of range for %d entries", s.state.Index, len(s.state.Visible)))
	}
	return s.state.Visible[s.state.Index].Name, true
}

// Visible returns a copy of the filtered entries in display order
func (s *Service) Visible() []domain.ScriptEntry {
	result := make([]domain.ScriptEntry, len(s.state.Visible))
	copy(result, s.state.Visible)
	return result
}

// Index returns the selection index
func (s *Service) Index() int {
	return s.state.Index
}

// Len returns the number of visible entries
func (s *Service) Len() int {
	return len(s.state.Visible)
}

func (s *Service) moveTo(index int) {
	old := s.state.Index
	s.state.Index = index
	if old != index {
		s.bus.Publish(SelectionMovedEvent{OldIndex: old, NewIndex: index})
	}
}
