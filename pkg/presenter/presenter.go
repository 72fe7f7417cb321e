// Package presenter holds the client-side view state of the dashboard: the
// last loaded snapshot, the active section and a few UI flags. It talks to
// the dashboard API through interfaces.DashboardClient.
package presenter

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/async"
)

// DefaultRefreshInterval is how often the snapshot is reloaded
const DefaultRefreshInterval = 30 * time.Second

// State is a copy of the presenter state, safe to read without locking
type State struct {
	Snapshot  *dashboard.Snapshot
	Section   Section
	PanelOpen bool
	Loading   bool
	LastErr   error
	// Fallback is true while the snapshot holds the static roster instead of a server response
	Fallback bool
	LoadedAt time.Time
}

type Presenter struct {
	client  interfaces.DashboardClient
	catalog *catalog.Catalog
	now     func() time.Time

	mu     sync.RWMutex
	state  State
	loaded bool
}

type Option func(*Presenter)

// WithCatalog sets the catalog used for the offline roster
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Presenter) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		p.now = now
	}
}

func New(client interfaces.DashboardClient, opts ...Option) *Presenter {
	p := &Presenter{
		client:  client,
		catalog: catalog.Default(),
		now:     time.Now,
		state: State{
			Snapshot: dashboard.NewSnapshot(),
			Section:  SectionHome,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a snapshot of the current state. The agent slice is copied
// so callers can range over it while a toggle is in flight.
func (p *Presenter) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := p.state
	snap := *p.state.Snapshot
	snap.Agents = append([]dashboard.Agent{}, p.state.Snapshot.Agents...)
	st.Snapshot = &snap
	return st
}

// Load fetches the full snapshot and replaces the state wholesale. When the
// first load fails the static roster is installed so the screen is not empty;
// later failures keep the previous snapshot.
func (p *Presenter) Load(ctx context.Context) error {
	p.mu.Lock()
	p.state.Loading = true
	p.mu.Unlock()

	snapshot, err := p.client.GetSnapshot(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false

	if err != nil {
		p.state.LastErr = err
		if !p.loaded {
			fallback := dashboard.NewSnapshot()
			fallback.Agents = p.catalog.FallbackAgents()
			p.state.Snapshot = fallback
			p.state.Fallback = true
			p.loaded = true
		}
		ctxlog.From(ctx).Warn("failed to load dashboard snapshot", "error", err, "fallback", p.state.Fallback)
		return goerr.Wrap(err, "failed to load snapshot")
	}

	if snapshot == nil {
		snapshot = dashboard.NewSnapshot()
	}
	p.state.Snapshot = snapshot
	p.state.Fallback = false
	p.state.LastErr = nil
	p.state.LoadedAt = p.now()
	p.loaded = true

	return nil
}

// ToggleAgent flips the agent's active flag locally, then submits the
// change in the background. A failed submit is recorded in LastErr; the local
// flip is not rolled back and the next Load overwrites it.
func (p *Presenter) ToggleAgent(ctx context.Context, agentID string) error {
	p.mu.Lock()
	idx := p.state.Snapshot.AgentByID(agentID)
	if idx < 0 {
		p.mu.Unlock()
		return goerr.Wrap(apperr.ErrAgentNotFound, "cannot toggle agent", goerr.TV(apperr.AgentIDKey, agentID))
	}
	agents := append([]dashboard.Agent{}, p.state.Snapshot.Agents...)
	agents[idx].Active = !agents[idx].Active
	if agents[idx].Active {
		agents[idx].Status = dashboard.AgentStatusOnline
	} else {
		agents[idx].Status = dashboard.AgentStatusOffline
	}
	snap := *p.state.Snapshot
	snap.Agents = agents
	p.state.Snapshot = &snap
	active := agents[idx].Active
	p.mu.Unlock()

	data := dashboard.ToggleAgentData{AgentID: agentID, Active: &active}
	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := p.client.SubmitAction(ctx, dashboard.ActionToggleAgent, data); err != nil {
			p.mu.Lock()
			p.state.LastErr = err
			p.mu.Unlock()
			return goerr.Wrap(err, "failed to submit agent toggle", goerr.TV(apperr.AgentIDKey, agentID))
		}
		return nil
	})

	return nil
}

// SetSection switches to s; unknown sections are rejected
func (p *Presenter) SetSection(s Section) error {
	if !s.IsValid() {
		return goerr.New("unknown section", goerr.V("section", s), goerr.T(apperr.ErrTagValidation))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Section = s
	return nil
}

// NextSection moves to the following section, wrapping around
func (p *Presenter) NextSection() Section {
	return p.moveSection(1)
}

// PrevSection moves to the preceding section, wrapping around
func (p *Presenter) PrevSection() Section {
	return p.moveSection(-1)
}

func (p *Presenter) moveSection(delta int) Section {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(Sections)
	i := (p.state.Section.index() + delta + n) % n
	p.state.Section = Sections[i]
	return p.state.Section
}

// TogglePanel flips the side panel and returns the new value
func (p *Presenter) TogglePanel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.PanelOpen = !p.state.PanelOpen
	return p.state.PanelOpen
}

// ClearError drops the last recorded error
func (p *Presenter) ClearError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.LastErr = nil
}

// Greeting returns the salutation for the local hour of now
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
