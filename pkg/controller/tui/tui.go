// Package tui renders the dashboard in the terminal and drives the presenter
// from keyboard input and a refresh timer.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/presenter"
)

// Run blocks until the user quits or ctx is cancelled
func Run(ctx context.Context, p *presenter.Presenter, interval time.Duration) error {
	program := tea.NewProgram(
		NewModel(ctx, p, interval),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return goerr.Wrap(err, "terminal dashboard exited")
	}
	return nil
}
