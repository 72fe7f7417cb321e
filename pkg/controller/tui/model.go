package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/mctl/pkg/presenter"
)

// Model is the bubbletea model of the terminal dashboard. All view state
// except the agent cursor and terminal size lives in the presenter.
type Model struct {
	ctx       context.Context
	presenter *presenter.Presenter
	interval  time.Duration
	now       func() time.Time
	help      help.Model

	cursor int
	width  int
	height int
}

func NewModel(ctx context.Context, p *presenter.Presenter, interval time.Duration) Model {
	if interval <= 0 {
		interval = presenter.DefaultRefreshInterval
	}
	return Model{
		ctx:       ctx,
		presenter: p,
		interval:  interval,
		now:       time.Now,
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.ctx, m.presenter), refreshTick(m.interval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotLoadedMsg:
		m.clampCursor()
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(loadCmd(m.ctx, m.presenter), refreshTick(m.interval))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextSection):
		m.presenter.NextSection()
		m.cursor = 0

	case key.Matches(msg, keys.PrevSection):
		m.presenter.PrevSection()
		m.cursor = 0

	case key.Matches(msg, keys.Panel):
		m.presenter.TogglePanel()

	case key.Matches(msg, keys.Refresh):
		m.presenter.ClearError()
		return m, loadCmd(m.ctx, m.presenter)

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, keys.Toggle):
		st := m.presenter.State()
		if st.Section != presenter.SectionAgents || m.cursor >= len(st.Snapshot.Agents) {
			return m, nil
		}
		id := st.Snapshot.Agents[m.cursor].ID
		if err := m.presenter.ToggleAgent(m.ctx, id); err != nil {
			ctxlog.From(m.ctx).Warn("failed to toggle agent", "agent_id", id, "error", err)
		}
	}

	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.presenter.State().Snapshot.Agents)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
