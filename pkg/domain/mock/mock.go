// Package mock provides function-field test doubles for the domain interfaces.
package mock

import (
	"context"
	"sync"

	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
)

var _ interfaces.GatewayClient = (*GatewayClientMock)(nil)
var _ interfaces.DashboardClient = (*DashboardClientMock)(nil)
var _ interfaces.DashboardUseCases = (*DashboardUseCasesMock)(nil)

// GatewayClientMock records call counts per source. A nil func returns an empty list.
type GatewayClientMock struct {
	ListActiveSessionsFunc func(ctx context.Context) (*gateway.SessionList, error)
	ListCronJobsFunc       func(ctx context.Context) (*gateway.CronJobList, error)
	ListAgentsFunc         func(ctx context.Context) (*gateway.AgentList, error)
	ListChannelsFunc       func(ctx context.Context) (*gateway.ChannelList, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *GatewayClientMock) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

// Calls returns how many times the named method was invoked
func (m *GatewayClientMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// TotalCalls returns the number of calls across every method
func (m *GatewayClientMock) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *GatewayClientMock) ListActiveSessions(ctx context.Context) (*gateway.SessionList, error) {
	m.record("ListActiveSessions")
	if m.ListActiveSessionsFunc == nil {
		return &gateway.SessionList{}, nil
	}
	return m.ListActiveSessionsFunc(ctx)
}

func (m *GatewayClientMock) ListCronJobs(ctx context.Context) (*gateway.CronJobList, error) {
	m.record("ListCronJobs")
	if m.ListCronJobsFunc == nil {
		return &gateway.CronJobList{}, nil
	}
	return m.ListCronJobsFunc(ctx)
}

func (m *GatewayClientMock) ListAgents(ctx context.Context) (*gateway.AgentList, error) {
	m.record("ListAgents")
	if m.ListAgentsFunc == nil {
		return &gateway.AgentList{}, nil
	}
	return m.ListAgentsFunc(ctx)
}

func (m *GatewayClientMock) ListChannels(ctx context.Context) (*gateway.ChannelList, error) {
	m.record("ListChannels")
	if m.ListChannelsFunc == nil {
		return &gateway.ChannelList{}, nil
	}
	return m.ListChannelsFunc(ctx)
}

// SubmitActionCall is one recorded DashboardClient.SubmitAction invocation
type SubmitActionCall struct {
	Action dashboard.Action
	Data   any
}

type DashboardClientMock struct {
	GetSnapshotFunc  func(ctx context.Context) (*dashboard.Snapshot, error)
	SubmitActionFunc func(ctx context.Context, action dashboard.Action, data any) error

	mu          sync.Mutex
	submitCalls []SubmitActionCall
}

func (m *DashboardClientMock) GetSnapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	if m.GetSnapshotFunc == nil {
		return dashboard.NewSnapshot(), nil
	}
	return m.GetSnapshotFunc(ctx)
}

func (m *DashboardClientMock) SubmitAction(ctx context.Context, action dashboard.Action, data any) error {
	m.mu.Lock()
	m.submitCalls = append(m.submitCalls, SubmitActionCall{Action: action, Data: data})
	m.mu.Unlock()
	if m.SubmitActionFunc == nil {
		return nil
	}
	return m.SubmitActionFunc(ctx, action, data)
}

// SubmitActionCalls returns a copy of the recorded calls
func (m *DashboardClientMock) SubmitActionCalls() []SubmitActionCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SubmitActionCall{}, m.submitCalls...)
}

type DashboardUseCasesMock struct {
	GetSnapshotFunc  func(ctx context.Context, filter dashboard.Filter) *dashboard.Snapshot
	SubmitActionFunc func(ctx context.Context, req *dashboard.ActionRequest) (any, error)
}

func (m *DashboardUseCasesMock) GetSnapshot(ctx context.Context, filter dashboard.Filter) *dashboard.Snapshot {
	if m.GetSnapshotFunc == nil {
		return dashboard.NewSnapshot()
	}
	return m.GetSnapshotFunc(ctx, filter)
}

func (m *DashboardUseCasesMock) SubmitAction(ctx context.Context, req *dashboard.ActionRequest) (any, error) {
	if m.SubmitActionFunc == nil {
		return nil, nil
	}
	return m.SubmitActionFunc(ctx, req)
}
