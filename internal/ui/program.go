package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"scriptpick/internal/config"
	"scriptpick/internal/domain"
	"scriptpick/internal/logic"
)

// Run shows the picker and blocks until the user confirms a script or leaves.
// The terminal is restored before Run returns, on every path.
func Run(ctx context.Context, store logic.ScriptStore, cfg *config.Config, opts ...tea.ProgramOption) (domain.Selection, error) {
	model := NewModel(store, cfg)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, options...)

	final, err := p.Run()
	if err != nil {
		return domain.NoSelection, fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(*Model)
	if !ok {
		return domain.NoSelection, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result(), nil
}
