package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scriptpick/internal/config"
	"scriptpick/internal/domain"
	"scriptpick/internal/logic"
	"scriptpick/internal/ui/input"
	"scriptpick/internal/ui/services/editor"
	"scriptpick/internal/ui/services/events"
	"scriptpick/internal/ui/services/navigation"
	"scriptpick/internal/ui/services/selection"
	"scriptpick/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    *events.Bus
	config *config.Config

	width  int
	height int
	help   help.Model
	keys   input.KeyMap

	editor    *editor.Service     // search query and cursor
	selection *selection.Service  // filtered list and highlighted entry
	navigator *navigation.Service // visible window over the list
	renderer  *views.Renderer

	result   domain.Selection
	quitting bool
}

// NewModel creates a new UI model over store
func NewModel(store logic.ScriptStore, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bus := events.NewBus()

	m := &Model{
		bus:       bus,
		config:    cfg,
		help:      help.New(),
		keys:      input.DefaultKeyMap(),
		editor:    editor.NewService(bus),
		selection: selection.NewService(store, bus),
		navigator: navigation.NewService(bus),
		renderer:  views.NewRenderer(),
		result:    domain.NoSelection,
	}
	m.subscribeLogging()
	return m
}

// subscribeLogging writes every state transition to the log
func (m *Model) subscribeLogging() {
	m.bus.Subscribe(events.TypeOf(editor.QueryChangedEvent{}), func(e interface{}) {
		log.Printf("Query changed: %q", e.(editor.QueryChangedEvent).Query)
	})
	m.bus.Subscribe(events.TypeOf(selection.FilterAppliedEvent{}), func(e interface{}) {
		event := e.(selection.FilterAppliedEvent)
		log.Printf("Filter applied for %q: %d matches", event.Query, event.MatchCount)
	})
	m.bus.Subscribe(events.TypeOf(selection.SelectionMovedEvent{}), func(e interface{}) {
		event := e.(selection.SelectionMovedEvent)
		log.Printf("Selection moved %d -> %d", event.OldIndex, event.NewIndex)
	})
	m.bus.Subscribe(events.TypeOf(navigation.ViewportChangedEvent{}), func(e interface{}) {
		event := e.(navigation.ViewportChangedEvent)
		log.Printf("Viewport scrolled to %d (%d rows)", event.Offset, event.Height)
	})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = views.KeyHelpWidth(msg.Width)
		m.navigator.SetViewportHeight(views.TableRows(msg.Height, m.config.UISettings.ShowHelpEnabled()))
		m.followSelection()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.result = domain.NoSelection
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		// Nothing matches the query: stay in the picker
		name, ok := m.selection.CurrentSelectionName()
		if !ok {
			return m, nil
		}
		m.result = domain.Confirm(name)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.selection.SelectPrevious()

	case key.Matches(msg, m.keys.Down):
		m.selection.SelectNext()

	case key.Matches(msg, m.keys.Left):
		m.editor.MoveLeft()

	case key.Matches(msg, m.keys.Right):
		m.editor.MoveRight()

	case key.Matches(msg, m.keys.Delete):
		if m.editor.DeleteBeforeCursor() {
			m.queryChanged()
		}

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			m.editor.Insert(r)
		}
		m.queryChanged()
	}

	m.followSelection()
	return m, nil
}

// queryChanged refilters and highlights the first match
func (m *Model) queryChanged() {
	m.selection.ApplyFilter(m.editor.Query())
	m.selection.Reset()
}

func (m *Model) followSelection() {
	m.navigator.Follow(m.selection.Index(), m.selection.Len())
}

// View renders the current state
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	start, end := m.navigator.Window(m.selection.Len())
	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Query:          m.editor.Query(),
		CursorOffset:   m.editor.CursorOffset(),
		Entries:        m.selection.Visible(),
		SelectedIndex:  m.selection.Index(),
		WindowStart:    start,
		WindowEnd:      end,
		ViewportHeight: m.navigator.GetViewportHeight(),
		ShowHelp:       m.config.UISettings.ShowHelpEnabled(),
		ShowCommands:   m.config.UISettings.ShowCommandsEnabled(),
		KeyHelp:        m.help.View(m.keys),
	})
}

// Result returns the outcome of the session once the program has quit
func (m *Model) Result() domain.Selection {
	return m.result
}

// Query returns the current search query
func (m *Model) Query() string {
	return m.editor.Query()
}

// CursorOffset returns the search cursor position in runes
func (m *Model) CursorOffset() int {
	return m.editor.CursorOffset()
}

// Visible returns the currently listed scripts
func (m *Model) Visible() []domain.ScriptEntry {
	return m.selection.Visible()
}

// SelectedIndex returns the highlighted row
func (m *Model) SelectedIndex() int {
	return m.selection.Index()
}
