package dashboard

// Filter selects a single snapshot category. FilterNone requests everything.
type Filter string

const (
	FilterNone     Filter = ""
	FilterAgents   Filter = "agents"
	FilterCrons    Filter = "crons"
	FilterProjects Filter = "projects"
	FilterTasks    Filter = "tasks"
	FilterChannels Filter = "channels"
	FilterDiscord  Filter = "discord"
)

// ParseFilter maps the ?type= query value to a Filter. "bot" is an alias of
// "discord"; unrecognized values fall through to the full snapshot.
func ParseFilter(v string) Filter {
	switch f := Filter(v); f {
	case FilterAgents, FilterCrons, FilterProjects, FilterTasks, FilterChannels, FilterDiscord:
		return f
	case "bot":
		return FilterDiscord
	default:
		return FilterNone
	}
}

// Sources returns the upstream resources needed to answer the filter
func (f Filter) Sources() []Source {
	switch f {
	case FilterAgents:
		return []Source{SourceAgents}
	case FilterCrons:
		return []Source{SourceCron}
	case FilterProjects:
		return nil
	case FilterTasks:
		return []Source{SourceSessions, SourceCron}
	case FilterChannels, FilterDiscord:
		return []Source{SourceChannels}
	default:
		return AllSources
	}
}

// Needs reports whether src must be fetched to answer the filter
func (f Filter) Needs(src Source) bool {
	for _, s := range f.Sources() {
		if s == src {
			return true
		}
	}
	return false
}

func (f Filter) String() string {
	if f == FilterNone {
		return "none"
	}
	return string(f)
}
