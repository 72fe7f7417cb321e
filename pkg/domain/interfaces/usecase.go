package interfaces

import (
	"context"

	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
)

// DashboardUseCases aggregates gateway state and accepts pass-through actions
type DashboardUseCases interface {
	// GetSnapshot never fails: unreachable sources degrade to empty, unavailable categories
	GetSnapshot(ctx context.Context, filter dashboard.Filter) *dashboard.Snapshot

	// SubmitAction validates and acknowledges an action. The returned value is the JSON echo.
	SubmitAction(ctx context.Context, req *dashboard.ActionRequest) (any, error)
}
