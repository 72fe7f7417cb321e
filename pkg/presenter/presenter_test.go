package presenter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/mock"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/presenter"
	"github.com/m-mizutani/mctl/pkg/utils/async"
)

func snapshotWith(agents ...dashboard.Agent) *dashboard.Snapshot {
	s := dashboard.NewSnapshot()
	s.Agents = append(s.Agents, agents...)
	return s
}

func TestPresenter_InitialState(t *testing.T) {
	p := presenter.New(&mock.DashboardClientMock{})
	st := p.State()

	gt.Equal(t, st.Section, presenter.SectionHome)
	gt.False(t, st.PanelOpen)
	gt.False(t, st.Loading)
	gt.Nil(t, st.LastErr)
	gt.A(t, st.Snapshot.Agents).Length(0)
}

func TestPresenter_Load(t *testing.T) {
	client := &mock.DashboardClientMock{
		GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
			return snapshotWith(dashboard.Agent{ID: "elon", Name: "Elon", Active: true}), nil
		},
	}
	now := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	p := presenter.New(client, presenter.WithClock(func() time.Time { return now }))

	gt.NoError(t, p.Load(context.Background()))

	st := p.State()
	gt.A(t, st.Snapshot.Agents).Length(1)
	gt.False(t, st.Fallback)
	gt.Equal(t, st.LoadedAt, now)
}

func TestPresenter_Load_FallbackRoster(t *testing.T) {
	errDown := goerr.New("connection refused")
	client := &mock.DashboardClientMock{
		GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
			return nil, errDown
		},
	}
	p := presenter.New(client)

	err := p.Load(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errDown))

	st := p.State()
	gt.True(t, st.Fallback)
	gt.Equal(t, len(st.Snapshot.Agents), len(catalog.Default().Agents))
	gt.NotNil(t, st.LastErr)
	gt.False(t, st.Loading)
}

func TestPresenter_Load_KeepsPreviousSnapshot(t *testing.T) {
	fail := false
	client := &mock.DashboardClientMock{
		GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
			if fail {
				return nil, goerr.New("timeout")
			}
			return snapshotWith(dashboard.Agent{ID: "neo"}), nil
		},
	}
	p := presenter.New(client)

	gt.NoError(t, p.Load(context.Background()))
	fail = true
	gt.Error(t, p.Load(context.Background()))

	st := p.State()
	gt.False(t, st.Fallback)
	gt.A(t, st.Snapshot.Agents).Length(1)
	gt.Equal(t, st.Snapshot.Agents[0].ID, "neo")
	gt.NotNil(t, st.LastErr)
}

func TestPresenter_ToggleAgent(t *testing.T) {
	ctx := async.WithSyncMode(context.Background())

	t.Run("flips locally and submits", func(t *testing.T) {
		client := &mock.DashboardClientMock{
			GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
				return snapshotWith(dashboard.Agent{ID: "elon", Active: true}), nil
			},
		}
		p := presenter.New(client)
		gt.NoError(t, p.Load(ctx)).Required()

		gt.NoError(t, p.ToggleAgent(ctx, "elon"))

		st := p.State()
		gt.False(t, st.Snapshot.Agents[0].Active)
		gt.Equal(t, st.Snapshot.Agents[0].Status, dashboard.AgentStatusOffline)

		calls := client.SubmitActionCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].Action, dashboard.ActionToggleAgent)
		data := calls[0].Data.(dashboard.ToggleAgentData)
		gt.Equal(t, data.AgentID, "elon")
		gt.False(t, *data.Active)
	})

	t.Run("failure is recorded without rollback", func(t *testing.T) {
		client := &mock.DashboardClientMock{
			GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
				return snapshotWith(dashboard.Agent{ID: "elon", Active: true}), nil
			},
			SubmitActionFunc: func(ctx context.Context, action dashboard.Action, data any) error {
				return goerr.New("dashboard unavailable")
			},
		}
		p := presenter.New(client)
		gt.NoError(t, p.Load(ctx)).Required()

		gt.NoError(t, p.ToggleAgent(ctx, "elon"))

		st := p.State()
		gt.False(t, st.Snapshot.Agents[0].Active)
		gt.NotNil(t, st.LastErr)
	})

	t.Run("unknown agent", func(t *testing.T) {
		client := &mock.DashboardClientMock{}
		p := presenter.New(client)

		err := p.ToggleAgent(ctx, "ghost")
		gt.True(t, errors.Is(err, apperr.ErrAgentNotFound))
		gt.A(t, client.SubmitActionCalls()).Length(0)
	})

	t.Run("state copies are not mutated", func(t *testing.T) {
		client := &mock.DashboardClientMock{
			GetSnapshotFunc: func(ctx context.Context) (*dashboard.Snapshot, error) {
				return snapshotWith(dashboard.Agent{ID: "elon", Active: true}), nil
			},
		}
		p := presenter.New(client)
		gt.NoError(t, p.Load(ctx)).Required()

		before := p.State()
		gt.NoError(t, p.ToggleAgent(ctx, "elon"))
		gt.True(t, before.Snapshot.Agents[0].Active)
	})
}

func TestPresenter_Sections(t *testing.T) {
	p := presenter.New(&mock.DashboardClientMock{})

	gt.Equal(t, p.NextSection(), presenter.SectionAgents)
	gt.Equal(t, p.PrevSection(), presenter.SectionHome)
	gt.Equal(t, p.PrevSection(), presenter.SectionTeam)
	gt.Equal(t, p.NextSection(), presenter.SectionHome)

	gt.NoError(t, p.SetSection(presenter.SectionDiscord))
	gt.Equal(t, p.State().Section, presenter.SectionDiscord)
	gt.Error(t, p.SetSection(presenter.Section("nowhere")))
	gt.Equal(t, p.State().Section, presenter.SectionDiscord)

	gt.A(t, presenter.Sections).Length(14)
	gt.True(t, presenter.SectionCouncil.IsPlaceholder())
	gt.False(t, presenter.SectionCalendar.IsPlaceholder())
}

func TestPresenter_TogglePanel(t *testing.T) {
	p := presenter.New(&mock.DashboardClientMock{})
	gt.True(t, p.TogglePanel())
	gt.True(t, p.State().PanelOpen)
	gt.False(t, p.TogglePanel())
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 3, 1, h, 30, 0, 0, time.UTC) }

	gt.Equal(t, presenter.Greeting(at(0)), "Good morning")
	gt.Equal(t, presenter.Greeting(at(11)), "Good morning")
	gt.Equal(t, presenter.Greeting(at(12)), "Good afternoon")
	gt.Equal(t, presenter.Greeting(at(16)), "Good afternoon")
	gt.Equal(t, presenter.Greeting(at(17)), "Good evening")
	gt.Equal(t, presenter.Greeting(at(23)), "Good evening")
}
