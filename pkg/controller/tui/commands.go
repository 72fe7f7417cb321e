package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/mctl/pkg/presenter"
)

func loadCmd(ctx context.Context, p *presenter.Presenter) tea.Cmd {
	return func() tea.Msg {
		return snapshotLoadedMsg{err: p.Load(ctx)}
	}
}

func refreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
