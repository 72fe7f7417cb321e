package usecase

import (
	"time"

	"github.com/m-mizutani/mctl/pkg/domain/interfaces"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
)

// Dashboard aggregates the gateway's live state with the static catalog
type Dashboard struct {
	gateway interfaces.GatewayClient
	catalog *catalog.Catalog
	clock   dashboard.TimeFormatter
}

// Option is a functional option for Dashboard
type Option func(*Dashboard)

// WithGatewayClient sets the gateway client. Without one every source reports unavailable.
func WithGatewayClient(client interfaces.GatewayClient) Option {
	return func(uc *Dashboard) {
		uc.gateway = client
	}
}

// WithCatalog replaces the embedded default catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(uc *Dashboard) {
		if c != nil {
			uc.catalog = c
		}
	}
}

// WithLocation sets the timezone used for display timestamps
func WithLocation(loc *time.Location) Option {
	return func(uc *Dashboard) {
		uc.clock = dashboard.NewTimeFormatter(loc)
	}
}

// New creates a new Dashboard instance
func New(opts ...Option) *Dashboard {
	uc := &Dashboard{
		catalog: catalog.Default(),
		clock:   dashboard.NewTimeFormatter(time.UTC),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ interfaces.DashboardUseCases = (*Dashboard)(nil)
