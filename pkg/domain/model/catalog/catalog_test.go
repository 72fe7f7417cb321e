package catalog_test

import (
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/model/catalog"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()

	gt.A(t, c.Projects).Length(4)
	gt.A(t, c.Agents).Length(11)
	gt.Equal(t, c.Discord.BotName, "Milo")
	gt.True(t, c.System.Gateway)
	gt.True(t, c.System.Tailscale)

	trait := c.Trait("elon")
	gt.NotNil(t, trait)
	gt.Equal(t, trait.Role, "Master Orchestrator")
	gt.Nil(t, c.Trait("nobody"))
}

func TestParse(t *testing.T) {
	t.Run("minimal catalog", func(t *testing.T) {
		c, err := catalog.Parse([]byte(`
agents:
  - id: neo
    name: Neo
    role: Cloud Code
    temp: 0.2
projects:
  - name: Mission Control
    url: https://example.com
system:
  gateway: true
`))
		gt.NoError(t, err).Required()
		gt.A(t, c.Agents).Length(1)
		gt.A(t, c.Projects).Length(1)
		gt.True(t, c.System.Gateway)
		gt.False(t, c.System.Tailscale)
	})

	testCases := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "agentz: []\n"},
		{name: "missing agent id", yaml: "agents:\n  - name: Neo\n"},
		{name: "duplicated agent id", yaml: "agents:\n  - id: neo\n  - id: neo\n"},
		{name: "temp out of range", yaml: "agents:\n  - id: neo\n    temp: 1.5\n"},
		{name: "project without name", yaml: "projects:\n  - url: https://example.com\n"},
		{name: "broken yaml", yaml: "agents: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.yaml))
			gt.Error(t, err)
		})
	}
}

func TestCatalog_CopiesAreIsolated(t *testing.T) {
	c := catalog.Default()

	projects := c.ProjectList()
	projects[0].Name = "mutated"
	gt.NotEqual(t, c.ProjectList()[0].Name, "mutated")

	profile := c.BotProfile()
	profile.Servers[0].Name = "mutated"
	gt.NotEqual(t, c.BotProfile().Servers[0].Name, "mutated")

	trait := c.Trait("neo")
	trait.Role = "mutated"
	gt.Equal(t, c.Trait("neo").Role, "Cloud Code")
}

func TestCatalog_FallbackAgents(t *testing.T) {
	agents := catalog.Default().FallbackAgents()
	gt.A(t, agents).Length(11)
	for _, a := range agents {
		gt.True(t, a.Active)
		gt.Equal(t, a.Status, "online")
	}
}

func TestCatalog_TraitConcurrentWithoutParse(t *testing.T) {
	c := &catalog.Catalog{
		Agents: []dashboard.AgentTrait{
			{ID: "neo", Name: "Neo", Role: "Engineer", Temp: 0.3},
			{ID: "elon", Name: "Elon", Role: "Orchestrator", Temp: 0.7},
		},
	}

	var wg sync.WaitGroup
	roles := make([]string, 32)
	for i := range roles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if tr := c.Trait("neo"); tr != nil {
				roles[i] = tr.Role
			}
		}(i)
	}
	wg.Wait()

	for _, role := range roles {
		gt.Equal(t, role, "Engineer")
	}
	gt.Equal(t, c.Trait("elon").Temp, 0.7)
	gt.True(t, c.Trait("nobody") == nil)
}
