package selection

import "scriptpick/internal/domain"

// State holds the filtered view and the highlighted entry.
// Index is only meaningful while Visible is non-empty.
type State struct {
	Visible []domain.ScriptEntry
	Index   int
}

// Event types
type FilterAppliedEvent struct {
	Query      string
	MatchCount int
}

type SelectionMovedEvent struct {
	OldIndex int
	NewIndex int
}
