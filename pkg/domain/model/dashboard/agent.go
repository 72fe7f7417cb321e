package dashboard

import "github.com/m-mizutani/mctl/pkg/domain/model/gateway"

// Agent is the display record for one roster entry
type Agent struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Temp   float64 `json:"temp"`
	Active bool    `json:"active"`
	Color  string  `json:"color"`
	Status string  `json:"status,omitempty"`
	Bio    string  `json:"bio,omitempty"`
}

// AgentTrait is the static, presentation-only part of an agent kept in the catalog
type AgentTrait struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Role  string  `json:"role" yaml:"role"`
	Temp  float64 `json:"temp" yaml:"temp"`
	Color string  `json:"color" yaml:"color"`
	Bio   string  `json:"bio,omitempty" yaml:"bio"`
}

const (
	defaultAgentRole  = "Agent"
	defaultAgentColor = "cyan"

	AgentStatusOnline  = "online"
	AgentStatusOffline = "offline"
)

// NewAgent merges an upstream roster entry with its optional catalog trait.
// Upstream values win; the trait fills what the gateway does not know.
func NewAgent(raw gateway.Agent, trait *AgentTrait) Agent {
	agent := Agent{
		ID:     raw.ID,
		Name:   raw.Name,
		Role:   raw.Role,
		Active: true,
		Color:  defaultAgentColor,
		Status: raw.Status,
	}

	if trait != nil {
		if agent.Name == "" {
			agent.Name = trait.Name
		}
		if agent.Role == "" {
			agent.Role = trait.Role
		}
		agent.Temp = trait.Temp
		if trait.Color != "" {
			agent.Color = trait.Color
		}
		agent.Bio = trait.Bio
	}

	if raw.Temperature != nil {
		agent.Temp = *raw.Temperature
	}
	if raw.Active != nil {
		agent.Active = *raw.Active
	}

	if agent.Name == "" {
		agent.Name = raw.ID
	}
	if agent.Role == "" {
		agent.Role = defaultAgentRole
	}
	agent.Temp = clampTemp(agent.Temp)

	if agent.Status == "" {
		agent.Status = AgentStatusOffline
		if agent.Active {
			agent.Status = AgentStatusOnline
		}
	}

	return agent
}

// FromTrait builds a display record straight from the catalog, used when no roster is reachable
func FromTrait(trait AgentTrait) Agent {
	return NewAgent(gateway.Agent{ID: trait.ID}, &trait)
}

func clampTemp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
