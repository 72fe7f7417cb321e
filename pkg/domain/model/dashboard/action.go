package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
)

// Action is a pass-through mutation tag accepted by POST /api/data
type Action string

const (
	ActionToggleAgent Action = "toggleAgent"
	ActionToggleCron  Action = "toggleCron"
	ActionRunCron     Action = "runCron"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionToggleAgent, ActionToggleCron, ActionRunCron:
		return true
	default:
		return false
	}
}

// ActionRequest is the inbound body {action, data}
type ActionRequest struct {
	Action Action          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// ToggleAgentData is the payload of toggleAgent
type ToggleAgentData struct {
	AgentID string `json:"agentId"`
	Active  *bool  `json:"active"`
}

// ToggleCronData is the payload of toggleCron
type ToggleCronData struct {
	CronName string `json:"cronName"`
	Enabled  *bool  `json:"enabled"`
}

// RunCronData is the payload of runCron
type RunCronData struct {
	CronName string `json:"cronName"`
}

// ToggleAgentResult echoes an accepted toggleAgent
type ToggleAgentResult struct {
	Success bool   `json:"success"`
	AgentID string `json:"agentId"`
	Active  bool   `json:"active"`
}

// ToggleCronResult echoes an accepted toggleCron
type ToggleCronResult struct {
	Success  bool   `json:"success"`
	CronName string `json:"cronName"`
	Enabled  bool   `json:"enabled"`
}

// RunCronResult acknowledges an accepted runCron
type RunCronResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewRunCronResult(cronName string) RunCronResult {
	return RunCronResult{Success: true, Message: fmt.Sprintf("Triggered %s", cronName)}
}

// DecodeToggleAgent validates the toggleAgent payload
func (r *ActionRequest) DecodeToggleAgent() (*ToggleAgentData, error) {
	var data ToggleAgentData
	if err := r.decode(&data); err != nil {
		return nil, err
	}
	if data.AgentID == "" {
		return nil, goerr.Wrap(apperr.ErrInvalidActionPayload, "agentId is required",
			goerr.TV(apperr.ActionKey, string(r.Action)), goerr.T(apperr.ErrTagRequiredField))
	}
	if data.Active == nil {
		return nil, goerr.Wrap(apperr.ErrInvalidActionPayload, "active is required",
			goerr.TV(apperr.AgentIDKey, data.AgentID), goerr.T(apperr.ErrTagRequiredField))
	}
	return &data, nil
}

// DecodeToggleCron validates the toggleCron payload
func (r *ActionRequest) DecodeToggleCron() (*ToggleCronData, error) {
	var data ToggleCronData
	if err := r.decode(&data); err != nil {
		return nil, err
	}
	if data.CronName == "" {
		return nil, goerr.Wrap(apperr.ErrInvalidActionPayload, "cronName is required",
			goerr.TV(apperr.ActionKey, string(r.Action)), goerr.T(apperr.ErrTagRequiredField))
	}
	if data.Enabled == nil {
		return nil, goerr.Wrap(apperr.ErrInvalidActionPayload, "enabled is required",
			goerr.TV(apperr.CronNameKey, data.CronName), goerr.T(apperr.ErrTagRequiredField))
	}
	return &data, nil
}

// DecodeRunCron validates the runCron payload
func (r *ActionRequest) DecodeRunCron() (*RunCronData, error) {
	var data RunCronData
	if err := r.decode(&data); err != nil {
		return nil, err
	}
	if data.CronName == "" {
		return nil, goerr.Wrap(apperr.ErrInvalidActionPayload, "cronName is required",
			goerr.TV(apperr.ActionKey, string(r.Action)), goerr.T(apperr.ErrTagRequiredField))
	}
	return &data, nil
}

func (r *ActionRequest) decode(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return goerr.Wrap(apperr.ErrInvalidActionPayload, "data is required",
			goerr.TV(apperr.ActionKey, string(r.Action)))
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return goerr.Wrap(apperr.ErrInvalidActionPayload, err.Error(),
			goerr.TV(apperr.ActionKey, string(r.Action)))
	}
	return nil
}
