package navigation

// State holds the visible window over the script table
type State struct {
	ViewportOffset int
	ViewportHeight int
}

// Event types for viewport changes
type ViewportChangedEvent struct {
	Offset int
	Height int
}
