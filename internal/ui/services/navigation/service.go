package navigation

import (
	"scriptpick/internal/ui/services/events"
)

// Service keeps the selected row inside the visible part of the table
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{
			ViewportOffset: 0,
			ViewportHeight: 20, // Default, will be updated
		},
		bus: bus,
	}
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of table rows that fit on screen
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
}

// Follow scrolls so that cursor is visible within a list of total rows
func (s *Service) Follow(cursor, total int) {
	offset := s.state.ViewportOffset

	if cursor < offset {
		offset = cursor
	} else if cursor >= offset+s.state.ViewportHeight {
		offset = cursor - s.state.ViewportHeight + 1
	}

	// Don't leave empty rows below the last entry
	if maxOffset := total - s.state.ViewportHeight; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}

// Window returns the [start, end) range of rows to draw
func (s *Service) Window(total int) (int, int) {
	start := s.state.ViewportOffset
	if start > total {
		start = total
	}
	end := start + s.state.ViewportHeight
	if end > total {
		end = total
	}
	return start, end
}
