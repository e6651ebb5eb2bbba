package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Help        lipgloss.Style
	HelpKey     lipgloss.Style
	Search      lipgloss.Style
	SearchText  lipgloss.Style
	Cursor      lipgloss.Style
	Table       lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Highlight   lipgloss.Style
	Dim         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Help:    lipgloss.NewStyle().Blink(true),
		HelpKey: lipgloss.NewStyle().Bold(true),
		Search: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderTop(false),
		SearchText: lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // yellow
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Table: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()),
		Header:      lipgloss.NewStyle().Background(lipgloss.Color("0")),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Dim:         lipgloss.NewStyle().Faint(true),
	}
}
