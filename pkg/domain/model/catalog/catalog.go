// Package catalog holds the static tables the dashboard merges into every
// snapshot: projects, agent presentation traits, the Discord bot profile and
// the system flags. A catalog is loaded once at startup and never mutated.
package catalog

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Catalog struct {
	Agents   []dashboard.AgentTrait `yaml:"agents"`
	Projects []dashboard.Project    `yaml:"projects"`
	Discord  dashboard.BotProfile   `yaml:"discord"`
	System   dashboard.System       `yaml:"system"`

	indexOnce sync.Once
	traits    map[string]*dashboard.AgentTrait
}

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic("embedded catalog is broken: " + err.Error())
	}
	return c
}

// DefaultYAML returns a copy of the embedded catalog document, used as a
// starting point for a custom --catalog file
func DefaultYAML() []byte {
	return append([]byte{}, defaultYAML...)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, goerr.Wrap(err, "failed to decode catalog", goerr.T(apperr.ErrTagInvalidFormat))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.indexOnce.Do(c.index)

	return &c, nil
}

// Validate checks that agent IDs are present and unique
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Agents))
	for i, a := range c.Agents {
		if a.ID == "" {
			return goerr.New("agent id is required", goerr.V("index", i), goerr.T(apperr.ErrTagRequiredField))
		}
		if _, ok := seen[a.ID]; ok {
			return goerr.New("duplicated agent id", goerr.TV(apperr.AgentIDKey, a.ID), goerr.T(apperr.ErrTagValidation))
		}
		if a.Temp < 0 || a.Temp > 1 {
			return goerr.New("agent temp must be within 0.0-1.0",
				goerr.TV(apperr.AgentIDKey, a.ID), goerr.V("temp", a.Temp), goerr.T(apperr.ErrTagValidation))
		}
		seen[a.ID] = struct{}{}
	}

	for i, p := range c.Projects {
		if p.Name == "" {
			return goerr.New("project name is required", goerr.V("index", i), goerr.T(apperr.ErrTagRequiredField))
		}
	}

	return nil
}

func (c *Catalog) index() {
	c.traits = make(map[string]*dashboard.AgentTrait, len(c.Agents))
	for i := range c.Agents {
		c.traits[c.Agents[i].ID] = &c.Agents[i]
	}
}

// Trait returns the presentation trait of agent id, or nil. It is safe for
// concurrent use, including on a catalog built without Parse.
func (c *Catalog) Trait(id string) *dashboard.AgentTrait {
	c.indexOnce.Do(c.index)
	t, ok := c.traits[id]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// ProjectList returns a copy of the static projects
func (c *Catalog) ProjectList() []dashboard.Project {
	out := make([]dashboard.Project, len(c.Projects))
	copy(out, c.Projects)
	return out
}

// BotProfile returns a copy of the Discord bot profile
func (c *Catalog) BotProfile() dashboard.BotProfile {
	p := c.Discord
	p.Servers = append([]dashboard.BotServer{}, c.Discord.Servers...)
	return p
}

// FallbackAgents renders every catalog agent as a display record. The
// presenter shows these when the dashboard API cannot be reached at all.
func (c *Catalog) FallbackAgents() []dashboard.Agent {
	out := make([]dashboard.Agent, 0, len(c.Agents))
	for _, t := range c.Agents {
		out = append(out, dashboard.FromTrait(t))
	}
	return out
}
