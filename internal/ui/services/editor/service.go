package editor

import (
	"scriptpick/internal/ui/services/events"
)

// Service maintains the live search query and its cursor.
// All positions are rune offsets so multi-byte characters edit correctly.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates an empty editor
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Insert adds r at the cursor and advances the cursor
func (s *Service) Insert(r rune) {
	at := s.state.Cursor
	query := make([]rune, 0, len(s.state.Query)+1)
	query = append(query, s.state.Query[:at]...)
	query = append(query, r)
	query = append(query, s.state.Query[at:]...)
	s.state.Query = query
	s.MoveRight()

	s.bus.Publish(QueryChangedEvent{Query: s.Query()})
}

// DeleteBeforeCursor removes the rune left of the cursor.
// It reports whether anything was removed; at position 0 it does nothing.
func (s *Service) DeleteBeforeCursor() bool {
	if s.state.Cursor == 0 {
		return false
	}

	at := s.state.Cursor
	s.state.Query = append(s.state.Query[:at-1], s.state.Query[at:]...)
	s.MoveLeft()

	s.bus.Publish(QueryChangedEvent{Query: s.Query()})
	return true
}

// MoveLeft shifts the cursor one rune left
func (s *Service) MoveLeft() {
	s.state.Cursor = s.clamp(s.state.Cursor - 1)
}

// MoveRight shifts the cursor one rune right
func (s *Service) MoveRight() {
	s.state.Cursor = s.clamp(s.state.Cursor + 1)
}

// CursorOffset returns the cursor's horizontal draw position in runes
func (s *Service) CursorOffset() int {
	return s.state.Cursor
}

// Query returns the current query text
func (s *Service) Query() string {
	return string(s.state.Query)
}

func (s *Service) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.state.Query) {
		return len(s.state.Query)
	}
	return pos
}
