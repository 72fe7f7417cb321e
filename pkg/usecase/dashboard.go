package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"golang.org/x/sync/errgroup"
)

var errNoGateway = goerr.New("gateway client is not configured", goerr.T(apperr.ErrTagGateway))

// upstream holds the raw reads of one snapshot request
type upstream struct {
	sessions Result[[]gateway.Session]
	cronJobs Result[[]gateway.CronJob]
	agents   Result[[]gateway.Agent]
	channels Result[[]gateway.Channel]
}

// GetSnapshot reads the sources filter needs concurrently, waits for all of
// them and merges the results with the catalog. It never fails: an
// unreachable source becomes an empty category marked unavailable.
func (uc *Dashboard) GetSnapshot(ctx context.Context, filter dashboard.Filter) *dashboard.Snapshot {
	raw := uc.fetchAll(ctx, filter)

	snapshot := dashboard.NewSnapshot()
	snapshot.Projects = uc.catalog.ProjectList()
	snapshot.System = uc.catalog.System

	for _, s := range raw.sessions.Value {
		snapshot.ActiveTasks = append(snapshot.ActiveTasks, dashboard.NewTask(s, uc.clock))
	}
	for _, j := range raw.cronJobs.Value {
		snapshot.CronJobs = append(snapshot.CronJobs, dashboard.NewCronJob(j, uc.clock))
	}
	for _, a := range raw.agents.Value {
		snapshot.Agents = append(snapshot.Agents, dashboard.NewAgent(a, uc.catalog.Trait(a.ID)))
	}
	for _, c := range raw.channels.Value {
		snapshot.Channels = append(snapshot.Channels, dashboard.NewChannel(c))
	}
	snapshot.Discord = dashboard.NewDiscord(snapshot.Channels, uc.catalog.BotProfile())

	for _, src := range filter.Sources() {
		switch src {
		case dashboard.SourceSessions:
			snapshot.Availability[src] = raw.sessions.Available
		case dashboard.SourceCron:
			snapshot.Availability[src] = raw.cronJobs.Available
		case dashboard.SourceAgents:
			snapshot.Availability[src] = raw.agents.Available
		case dashboard.SourceChannels:
			snapshot.Availability[src] = raw.channels.Available
		}
	}

	ctxlog.From(ctx).Debug("snapshot assembled",
		"filter", filter.String(),
		"availability", snapshot.Availability,
		"agents", len(snapshot.Agents),
		"cron_jobs", len(snapshot.CronJobs),
		"tasks", len(snapshot.ActiveTasks),
		"channels", len(snapshot.Channels),
	)

	return snapshot
}

func (uc *Dashboard) fetchAll(ctx context.Context, filter dashboard.Filter) upstream {
	var (
		raw upstream
		eg  errgroup.Group
	)

	// Each goroutine owns one field of raw, so no locking is needed before Wait.
	if filter.Needs(dashboard.SourceSessions) {
		eg.Go(func() error {
			raw.sessions = fetchWithFallback(ctx, dashboard.SourceSessions, uc.listSessions, nil)
			return nil
		})
	}
	if filter.Needs(dashboard.SourceCron) {
		eg.Go(func() error {
			raw.cronJobs = fetchWithFallback(ctx, dashboard.SourceCron, uc.listCronJobs, nil)
			return nil
		})
	}
	if filter.Needs(dashboard.SourceAgents) {
		eg.Go(func() error {
			raw.agents = fetchWithFallback(ctx, dashboard.SourceAgents, uc.listAgents, nil)
			return nil
		})
	}
	if filter.Needs(dashboard.SourceChannels) {
		eg.Go(func() error {
			raw.channels = fetchWithFallback(ctx, dashboard.SourceChannels, uc.listChannels, nil)
			return nil
		})
	}

	_ = eg.Wait()
	return raw
}

func (uc *Dashboard) listSessions(ctx context.Context) ([]gateway.Session, error) {
	if uc.gateway == nil {
		return nil, errNoGateway
	}
	resp, err := uc.gateway.ListActiveSessions(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Sessions, nil
}

func (uc *Dashboard) listCronJobs(ctx context.Context) ([]gateway.CronJob, error) {
	if uc.gateway == nil {
		return nil, errNoGateway
	}
	resp, err := uc.gateway.ListCronJobs(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Jobs, nil
}

func (uc *Dashboard) listAgents(ctx context.Context) ([]gateway.Agent, error) {
	if uc.gateway == nil {
		return nil, errNoGateway
	}
	resp, err := uc.gateway.ListAgents(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Agents, nil
}

func (uc *Dashboard) listChannels(ctx context.Context) ([]gateway.Channel, error) {
	if uc.gateway == nil {
		return nil, errNoGateway
	}
	resp, err := uc.gateway.ListChannels(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	return resp.Channels, nil
}
