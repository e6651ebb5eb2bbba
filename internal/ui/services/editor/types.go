package editor

// State holds the search query and the editing cursor.
// Cursor is a rune offset into Query, always in [0, len(Query)].
type State struct {
	Query  []rune
	Cursor int
}

// Event types
type QueryChangedEvent struct {
	Query string
}
