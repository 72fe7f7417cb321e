package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
)

// SubmitAction validates req and acknowledges it with an echo of its payload.
// Actions are simulated: the gateway is never contacted.
func (uc *Dashboard) SubmitAction(ctx context.Context, req *dashboard.ActionRequest) (any, error) {
	if req == nil {
		return nil, goerr.Wrap(apperr.ErrInvalidRequestBody, "action request is empty")
	}
	logger := ctxlog.From(ctx).With("action", string(req.Action))

	switch req.Action {
	case dashboard.ActionToggleAgent:
		data, err := req.DecodeToggleAgent()
		if err != nil {
			return nil, err
		}
		logger.Info("agent toggle accepted", "agent_id", data.AgentID, "active", *data.Active)
		return dashboard.ToggleAgentResult{Success: true, AgentID: data.AgentID, Active: *data.Active}, nil

	case dashboard.ActionToggleCron:
		data, err := req.DecodeToggleCron()
		if err != nil {
			return nil, err
		}
		logger.Info("cron toggle accepted", "cron_name", data.CronName, "enabled", *data.Enabled)
		return dashboard.ToggleCronResult{Success: true, CronName: data.CronName, Enabled: *data.Enabled}, nil

	case dashboard.ActionRunCron:
		data, err := req.DecodeRunCron()
		if err != nil {
			return nil, err
		}
		logger.Info("cron run accepted", "cron_name", data.CronName)
		return dashboard.NewRunCronResult(data.CronName), nil

	default:
		logger.Warn("rejected unknown action")
		return nil, apperr.ErrUnknownAction
	}
}
