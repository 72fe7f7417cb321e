package dashboard

// Source names one upstream gateway resource
type Source string

const (
	SourceSessions Source = "sessions"
	SourceCron     Source = "cron"
	SourceAgents   Source = "agents"
	SourceChannels Source = "channels"
)

// AllSources lists every upstream resource in a stable order
var AllSources = []Source{SourceSessions, SourceCron, SourceAgents, SourceChannels}

// Availability records, per consulted source, whether the gateway answered.
// A false entry means "unavailable", which is distinct from an empty collection.
type Availability map[Source]bool

// Snapshot is the merged, point-in-time view of every dashboard category
type Snapshot struct {
	Agents       []Agent      `json:"agents"`
	CronJobs     []CronJob    `json:"cronJobs"`
	Projects     []Project    `json:"projects"`
	Discord      Discord      `json:"discord"`
	Channels     []Channel    `json:"channels"`
	ActiveTasks  []Task       `json:"activeTasks"`
	System       System       `json:"system"`
	Availability Availability `json:"availability"`
}

// NewSnapshot returns a snapshot whose collections are empty, never nil, so they encode as []
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Agents:       []Agent{},
		CronJobs:     []CronJob{},
		Projects:     []Project{},
		Discord:      NewDiscord(nil, BotProfile{}),
		Channels:     []Channel{},
		ActiveTasks:  []Task{},
		Availability: Availability{},
	}
}

// View projects the snapshot onto the JSON shape requested by filter
func (s *Snapshot) View(filter Filter) any {
	avail := s.Availability.subset(filter.Sources())

	switch filter {
	case FilterAgents:
		return map[string]any{"agents": s.Agents, "availability": avail}
	case FilterCrons:
		return map[string]any{"cronJobs": s.CronJobs, "availability": avail}
	case FilterProjects:
		return map[string]any{"projects": s.Projects}
	case FilterTasks:
		return map[string]any{"tasks": s.ActiveTasks, "cronJobs": s.CronJobs, "availability": avail}
	case FilterChannels:
		return map[string]any{"channels": s.Channels, "availability": avail}
	case FilterDiscord:
		return map[string]any{"discord": s.Discord, "availability": avail}
	default:
		return s
	}
}

// AgentByID returns the index of the agent with id, or -1
func (s *Snapshot) AgentByID(id string) int {
	for i := range s.Agents {
		if s.Agents[i].ID == id {
			return i
		}
	}
	return -1
}

func (a Availability) subset(sources []Source) Availability {
	out := make(Availability, len(sources))
	for _, src := range sources {
		out[src] = a[src]
	}
	return out
}
