package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prideconnect/prideconnect/internal/session"
)

// Run starts the interactive interface over the given session store and
// blocks until the user quits.
func Run(ctx context.Context, store *session.Store) error {
	program := tea.NewProgram(NewModel(store), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
