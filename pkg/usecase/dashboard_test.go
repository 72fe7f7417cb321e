package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/mock"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
	"github.com/m-mizutani/mctl/pkg/usecase"
)

func ptr[T any](v T) *T {
	return &v
}

// healthyGateway returns a gateway double that answers every source
func healthyGateway() *mock.GatewayClientMock {
	return &mock.GatewayClientMock{
		ListActiveSessionsFunc: func(ctx context.Context) (*gateway.SessionList, error) {
			return &gateway.SessionList{
				Sessions: []gateway.Session{
					{SessionID: "s1", AgentID: "neo", Model: "claude", InputTokens: 120, OutputTokens: 40, UpdatedAt: 1700000000000},
					{SessionID: "s2"},
				},
				Count: 2,
			}, nil
		},
		ListCronJobsFunc: func(ctx context.Context) (*gateway.CronJobList, error) {
			return &gateway.CronJobList{
				Jobs: []gateway.CronJob{
					{
						Name:     "daily-brief",
						Enabled:  true,
						Schedule: &gateway.CronSchedule{Expr: "0 9 * * *"},
						State:    &gateway.CronState{LastStatus: "ok", LastDurationMs: 4200, LastRunAtMs: 1700000000000},
					},
					{Name: "backup", State: &gateway.CronState{LastStatus: "failed"}},
				},
				Total: 2,
			}, nil
		},
		ListAgentsFunc: func(ctx context.Context) (*gateway.AgentList, error) {
			return &gateway.AgentList{
				Agents: []gateway.Agent{
					{ID: "elon"},
					{ID: "neo", Active: ptr(false)},
					{ID: "stranger", Name: "Stranger"},
				},
			}, nil
		},
		ListChannelsFunc: func(ctx context.Context) (*gateway.ChannelList, error) {
			return &gateway.ChannelList{
				Channels: []gateway.Channel{
					{ID: "c1", Provider: "discord", Enabled: true},
					{ID: "c2", Provider: "telegram", Name: "ops"},
				},
			}, nil
		},
	}
}

func TestDashboard_GetSnapshot(t *testing.T) {
	gw := healthyGateway()
	uc := usecase.New(usecase.WithGatewayClient(gw), usecase.WithLocation(time.UTC))

	snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	gt.Equal(t, gw.TotalCalls(), 4)
	for _, src := range dashboard.AllSources {
		gt.True(t, snapshot.Availability[src])
	}

	t.Run("agents are enriched from the catalog", func(t *testing.T) {
		gt.A(t, snapshot.Agents).Length(3)
		gt.Equal(t, snapshot.Agents[0].Name, "Elon")
		gt.Equal(t, snapshot.Agents[0].Role, "Master Orchestrator")
		gt.Equal(t, snapshot.Agents[0].Temp, 0.3)
		gt.True(t, snapshot.Agents[0].Active)
		gt.False(t, snapshot.Agents[1].Active)
		gt.Equal(t, snapshot.Agents[1].Status, dashboard.AgentStatusOffline)
		gt.Equal(t, snapshot.Agents[2].Role, "Agent")
	})

	t.Run("cron jobs are reshaped", func(t *testing.T) {
		gt.A(t, snapshot.CronJobs).Length(2)
		gt.Equal(t, snapshot.CronJobs[0].Status, dashboard.CronStatusSuccess)
		gt.Equal(t, snapshot.CronJobs[0].LastDuration, "4s")
		gt.Equal(t, snapshot.CronJobs[0].Schedule, "0 9 * * *")
		gt.Equal(t, snapshot.CronJobs[0].LastRun, "11/14/2023, 10:13:20 PM")
		gt.Equal(t, snapshot.CronJobs[1].Status, dashboard.CronStatusError)
		gt.Equal(t, snapshot.CronJobs[1].LastRun, "Never")
	})

	t.Run("sessions become tasks with defaults", func(t *testing.T) {
		gt.A(t, snapshot.ActiveTasks).Length(2)
		gt.Equal(t, snapshot.ActiveTasks[0].Agent, "neo")
		gt.Equal(t, snapshot.ActiveTasks[1].Agent, "main")
		gt.Equal(t, snapshot.ActiveTasks[1].Model, "Unknown")
		gt.Equal(t, snapshot.ActiveTasks[1].UpdatedAt, "Unknown")
		gt.Equal(t, snapshot.ActiveTasks[1].Kind, "direct")
	})

	t.Run("discord is connected via a discord channel", func(t *testing.T) {
		gt.A(t, snapshot.Channels).Length(2)
		gt.Equal(t, snapshot.Channels[0].Name, "discord")
		gt.True(t, snapshot.Discord.Connected)
		gt.Equal(t, snapshot.Discord.Status, dashboard.BotStatusOnline)
		gt.Equal(t, snapshot.Discord.BotName, "Milo")
	})

	t.Run("static parts come from the catalog", func(t *testing.T) {
		gt.Equal(t, len(snapshot.Projects), len(catalog.Default().Projects))
		gt.True(t, snapshot.System.Gateway)
	})
}

func TestDashboard_GetSnapshot_SourceDown(t *testing.T) {
	errDown := goerr.New("connection refused")

	testCases := []struct {
		name   string
		source dashboard.Source
		breaks func(gw *mock.GatewayClientMock)
		empty  func(t *testing.T, s *dashboard.Snapshot)
	}{
		{
			name:   "sessions",
			source: dashboard.SourceSessions,
			breaks: func(gw *mock.GatewayClientMock) {
				gw.ListActiveSessionsFunc = func(ctx context.Context) (*gateway.SessionList, error) { return nil, errDown }
			},
			empty: func(t *testing.T, s *dashboard.Snapshot) { gt.A(t, s.ActiveTasks).Length(0) },
		},
		{
			name:   "cron",
			source: dashboard.SourceCron,
			breaks: func(gw *mock.GatewayClientMock) {
				gw.ListCronJobsFunc = func(ctx context.Context) (*gateway.CronJobList, error) { return nil, errDown }
			},
			empty: func(t *testing.T, s *dashboard.Snapshot) { gt.A(t, s.CronJobs).Length(0) },
		},
		{
			name:   "agents",
			source: dashboard.SourceAgents,
			breaks: func(gw *mock.GatewayClientMock) {
				gw.ListAgentsFunc = func(ctx context.Context) (*gateway.AgentList, error) { return nil, errDown }
			},
			empty: func(t *testing.T, s *dashboard.Snapshot) { gt.A(t, s.Agents).Length(0) },
		},
		{
			name:   "channels",
			source: dashboard.SourceChannels,
			breaks: func(gw *mock.GatewayClientMock) {
				gw.ListChannelsFunc = func(ctx context.Context) (*gateway.ChannelList, error) { return nil, errDown }
			},
			empty: func(t *testing.T, s *dashboard.Snapshot) {
				gt.A(t, s.Channels).Length(0)
				gt.False(t, s.Discord.Connected)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := healthyGateway()
			tc.breaks(gw)
			uc := usecase.New(usecase.WithGatewayClient(gw))

			snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

			tc.empty(t, snapshot)
			gt.False(t, snapshot.Availability[tc.source])
			for _, src := range dashboard.AllSources {
				if src != tc.source {
					gt.True(t, snapshot.Availability[src])
				}
			}
			gt.Equal(t, len(snapshot.Projects), len(catalog.Default().Projects))
		})
	}
}

func TestDashboard_GetSnapshot_AllDown(t *testing.T) {
	errDown := goerr.New("connection refused")
	gw := &mock.GatewayClientMock{
		ListActiveSessionsFunc: func(ctx context.Context) (*gateway.SessionList, error) { return nil, errDown },
		ListCronJobsFunc:       func(ctx context.Context) (*gateway.CronJobList, error) { return nil, errDown },
		ListAgentsFunc:         func(ctx context.Context) (*gateway.AgentList, error) { return nil, errDown },
		ListChannelsFunc:       func(ctx context.Context) (*gateway.ChannelList, error) { return nil, errDown },
	}
	uc := usecase.New(usecase.WithGatewayClient(gw))

	snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	gt.A(t, snapshot.Agents).Length(0)
	gt.A(t, snapshot.CronJobs).Length(0)
	gt.A(t, snapshot.ActiveTasks).Length(0)
	gt.A(t, snapshot.Channels).Length(0)
	gt.False(t, snapshot.Discord.Connected)
	gt.NotEqual(t, len(snapshot.Projects), 0)
	for _, src := range dashboard.AllSources {
		gt.False(t, snapshot.Availability[src])
	}
}

func TestDashboard_GetSnapshot_PanicIsContained(t *testing.T) {
	gw := healthyGateway()
	gw.ListCronJobsFunc = func(ctx context.Context) (*gateway.CronJobList, error) {
		panic("malformed state")
	}
	uc := usecase.New(usecase.WithGatewayClient(gw))

	snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	gt.False(t, snapshot.Availability[dashboard.SourceCron])
	gt.True(t, snapshot.Availability[dashboard.SourceAgents])
	gt.A(t, snapshot.CronJobs).Length(0)
}

func TestDashboard_GetSnapshot_NoGateway(t *testing.T) {
	uc := usecase.New()
	snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	for _, src := range dashboard.AllSources {
		gt.False(t, snapshot.Availability[src])
	}
	gt.NotEqual(t, len(snapshot.Projects), 0)
}

func TestDashboard_GetSnapshot_Idempotent(t *testing.T) {
	uc := usecase.New(usecase.WithGatewayClient(healthyGateway()))

	first := uc.GetSnapshot(context.Background(), dashboard.FilterNone)
	second := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	gt.V(t, second).Equal(first)
}

func TestDashboard_GetSnapshot_Filter(t *testing.T) {
	testCases := []struct {
		filter dashboard.Filter
		calls  map[string]int
	}{
		{filter: dashboard.FilterProjects, calls: map[string]int{}},
		{filter: dashboard.FilterAgents, calls: map[string]int{"ListAgents": 1}},
		{filter: dashboard.FilterCrons, calls: map[string]int{"ListCronJobs": 1}},
		{filter: dashboard.FilterTasks, calls: map[string]int{"ListActiveSessions": 1, "ListCronJobs": 1}},
		{filter: dashboard.FilterChannels, calls: map[string]int{"ListChannels": 1}},
		{filter: dashboard.FilterDiscord, calls: map[string]int{"ListChannels": 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.filter.String(), func(t *testing.T) {
			gw := healthyGateway()
			uc := usecase.New(usecase.WithGatewayClient(gw))

			snapshot := uc.GetSnapshot(context.Background(), tc.filter)

			total := 0
			for name, n := range tc.calls {
				gt.Equal(t, gw.Calls(name), n)
				total += n
			}
			gt.Equal(t, gw.TotalCalls(), total)
			gt.Equal(t, len(snapshot.Availability), len(tc.filter.Sources()))
		})
	}
}

func TestDashboard_GetSnapshot_DiscordWithoutChannels(t *testing.T) {
	gw := &mock.GatewayClientMock{
		ListChannelsFunc: func(ctx context.Context) (*gateway.ChannelList, error) {
			return &gateway.ChannelList{Channels: []gateway.Channel{}}, nil
		},
	}
	uc := usecase.New(usecase.WithGatewayClient(gw))

	snapshot := uc.GetSnapshot(context.Background(), dashboard.ParseFilter("discord"))

	gt.False(t, snapshot.Discord.Connected)
	gt.Equal(t, snapshot.Discord.Status, dashboard.BotStatusOffline)
	gt.True(t, snapshot.Availability[dashboard.SourceChannels])
}

func TestDashboard_WithCatalog(t *testing.T) {
	c, err := catalog.Parse([]byte(`
agents:
  - id: elon
    name: Elon Prime
    role: Orchestrator
    temp: 0.9
    color: red
projects:
  - name: Solo
    url: https://example.com
system:
  gateway: false
  tailscale: true
`))
	gt.NoError(t, err).Required()

	uc := usecase.New(usecase.WithGatewayClient(healthyGateway()), usecase.WithCatalog(c))
	snapshot := uc.GetSnapshot(context.Background(), dashboard.FilterNone)

	gt.Equal(t, snapshot.Agents[0].Name, "Elon Prime")
	gt.Equal(t, snapshot.Agents[0].Color, "red")
	gt.A(t, snapshot.Projects).Length(1)
	gt.False(t, snapshot.System.Gateway)
	gt.True(t, snapshot.System.Tailscale)
}
