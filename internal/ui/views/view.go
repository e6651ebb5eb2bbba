package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"scriptpick/internal/domain"
)

const (
	defaultWidth    = 80
	nameColumnWidth = 26
	highlightSymbol = " █ "
	searchTitle     = "Search"
	helpPrefix      = "Press esc to exit, "

	searchLines = 3 // border, query, border
	tableChrome = 3 // two borders and the header row
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Query          string
	CursorOffset   int
	Entries        []domain.ScriptEntry
	SelectedIndex  int
	WindowStart    int // first entry drawn
	WindowEnd      int // one past the last entry drawn
	ViewportHeight int
	ShowHelp       bool
	ShowCommands   bool
	KeyHelp        string // rendered key bindings appended to the help line
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// TableRows returns how many script rows fit in a terminal of the given height
func TableRows(height int, showHelp bool) int {
	rows := height - searchLines - tableChrome
	if showHelp {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// KeyHelpWidth returns the room left for key help after the fixed help prefix
func KeyHelpWidth(width int) int {
	w := width - runewidth.StringWidth(helpPrefix)
	if w < 1 {
		w = 1
	}
	return w
}

// Render produces the complete view: help line, search box, script table
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string
	if state.ShowHelp {
		sections = append(sections, r.RenderHelp(state.KeyHelp, width))
	}
	sections = append(sections, r.RenderSearch(state.Query, state.CursorOffset, width))
	sections = append(sections, r.RenderTable(state, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderHelp renders the top help line, cut to width cells
func (r *Renderer) RenderHelp(keyHelp string, width int) string {
	line := r.styles.Help.Render("Press ") +
		r.styles.Help.Inherit(r.styles.HelpKey).Render("esc") +
		r.styles.Help.Render(" to exit, ")
	if keyHelp != "" {
		line += keyHelp
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// RenderSearch renders the bordered search box with the cursor drawn at cursor
func (r *Renderer) RenderSearch(query string, cursor int, width int) string {
	border := lipgloss.NormalBorder()
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	title := searchTitle
	if runewidth.StringWidth(title) > inner {
		title = runewidth.Truncate(title, inner, "")
	}
	top := border.TopLeft + title + strings.Repeat(border.Top, inner-runewidth.StringWidth(title)) + border.TopRight

	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	start, end := scrollQuery(runes, cursor, inner)
	before := string(runes[start:cursor])
	at := " "
	after := ""
	if cursor < len(runes) {
		at = string(runes[cursor])
		after = string(runes[cursor+1 : end])
	}
	text := r.styles.SearchText.Render(before) +
		r.styles.Cursor.Render(at) +
		r.styles.SearchText.Render(after)

	box := r.styles.Search.Width(inner).Render(text)
	return top + "\n" + box
}

// RenderTable renders the header and the visible window of script rows
func (r *Renderer) RenderTable(state ViewState, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	lines := []string{r.renderHeader(inner, state.ShowCommands)}

	if len(state.Entries) == 0 {
		lines = append(lines, r.styles.Dim.Render(fit("   No matching scripts", inner)))
	}

	start, end := state.WindowStart, state.WindowEnd
	if end > len(state.Entries) {
		end = len(state.Entries)
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(state.Entries[i], i == state.SelectedIndex, inner, state.ShowCommands))
	}

	height := state.ViewportHeight + 1
	return r.styles.Table.Width(inner).Height(height).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderHeader(inner int, showCommands bool) string {
	header := strings.Repeat(" ", runewidth.StringWidth(highlightSymbol))
	if showCommands {
		header += runewidth.FillRight("Script", nameColumnWidth) + "Command"
	} else {
		header += "Script"
	}
	return r.styles.Header.Render(fit(header, inner))
}

func (r *Renderer) renderRow(entry domain.ScriptEntry, selected bool, inner int, showCommands bool) string {
	prefix := strings.Repeat(" ", runewidth.StringWidth(highlightSymbol))
	if selected {
		prefix = r.styles.Highlight.Render(highlightSymbol)
	}

	text := entry.Name
	if showCommands {
		text = runewidth.FillRight(runewidth.Truncate(entry.Name, nameColumnWidth-1, "…"), nameColumnWidth) + entry.Command
	}
	text = fit(text, inner-runewidth.StringWidth(highlightSymbol))

	style := r.styles.Row
	if selected {
		style = r.styles.SelectedRow
	}
	return prefix + style.Render(text)
}

// scrollQuery picks the [start, end) runes of the query that fit in width
// cells, scrolling horizontally so the cursor cell stays visible
func scrollQuery(runes []rune, cursor, width int) (int, int) {
	used := 1 // the cursor cell, blank past the end of the query
	if cursor < len(runes) && runewidth.RuneWidth(runes[cursor]) > 1 {
		used = runewidth.RuneWidth(runes[cursor])
	}
	for _, r := range runes[:cursor] {
		used += runewidth.RuneWidth(r)
	}

	start := 0
	for used > width && start < cursor {
		used -= runewidth.RuneWidth(runes[start])
		start++
	}

	end := cursor
	if cursor < len(runes) {
		end++
	}
	for end < len(runes) && used+runewidth.RuneWidth(runes[end]) <= width {
		used += runewidth.RuneWidth(runes[end])
		end++
	}
	return start, end
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
