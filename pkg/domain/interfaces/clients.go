package interfaces

import (
	"context"

	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
)

// GatewayClient reads the automation gateway's JSON endpoints
type GatewayClient interface {
	ListActiveSessions(ctx context.Context) (*gateway.SessionList, error)
	ListCronJobs(ctx context.Context) (*gateway.CronJobList, error)
	ListAgents(ctx context.Context) (*gateway.AgentList, error)
	ListChannels(ctx context.Context) (*gateway.ChannelList, error)
}

// DashboardClient talks to the dashboard's own /api/data endpoint
type DashboardClient interface {
	GetSnapshot(ctx context.Context) (*dashboard.Snapshot, error)
	SubmitAction(ctx context.Context, action dashboard.Action, data any) error
}
