package dashboard_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/model/gateway"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewAgent(t *testing.T) {
	trait := &dashboard.AgentTrait{
		ID:    "elon",
		Name:  "Elon",
		Role:  "Master Orchestrator",
		Temp:  0.3,
		Color: "elon",
		Bio:   "You run Mission Control.",
	}

	t.Run("enriched from trait", func(t *testing.T) {
		agent := dashboard.NewAgent(gateway.Agent{ID: "elon"}, trait)

		gt.Equal(t, agent, dashboard.Agent{
			ID:     "elon",
			Name:   "Elon",
			Role:   "Master Orchestrator",
			Temp:   0.3,
			Active: true,
			Color:  "elon",
			Status: "online",
			Bio:    "You run Mission Control.",
		})
	})

	t.Run("upstream values win", func(t *testing.T) {
		agent := dashboard.NewAgent(gateway.Agent{
			ID:          "elon",
			Name:        "Elon Prime",
			Temperature: ptr(0.9),
			Active:      ptr(false),
		}, trait)

		gt.Equal(t, agent.Name, "Elon Prime")
		gt.Equal(t, agent.Role, "Master Orchestrator")
		gt.Equal(t, agent.Temp, 0.9)
		gt.False(t, agent.Active)
		gt.Equal(t, agent.Status, "offline")
	})

	t.Run("unknown agent gets defaults", func(t *testing.T) {
		agent := dashboard.NewAgent(gateway.Agent{ID: "main"}, nil)

		gt.Equal(t, agent.Name, "main")
		gt.Equal(t, agent.Role, "Agent")
		gt.Equal(t, agent.Color, "cyan")
		gt.True(t, agent.Active)
		gt.Equal(t, agent.Status, "online")
	})

	t.Run("temperature is clamped", func(t *testing.T) {
		gt.Equal(t, dashboard.NewAgent(gateway.Agent{ID: "a", Temperature: ptr(1.7)}, nil).Temp, 1.0)
		gt.Equal(t, dashboard.NewAgent(gateway.Agent{ID: "a", Temperature: ptr(-0.2)}, nil).Temp, 0.0)
	})
}
