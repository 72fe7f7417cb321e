package presenter

// Section is the navigation tag of the dashboard. Only the tag is tracked;
// what a section shows is up to the renderer.
type Section string

const (
	SectionHome      Section = "home"
	SectionAgents    Section = "agents"
	SectionTasks     Section = "tasks"
	SectionCouncil   Section = "council"
	SectionApprovals Section = "approvals"
	SectionDiscord   Section = "discord"
	SectionContent   Section = "content"
	SectionProjects  Section = "projects"
	SectionCalendar  Section = "calendar"
	SectionMemory    Section = "memory"
	SectionDocs      Section = "docs"
	SectionPeople    Section = "people"
	SectionOffice    Section = "office"
	SectionTeam      Section = "team"
)

// Sections lists every section in navigation order
var Sections = []Section{
	SectionHome,
	SectionAgents,
	SectionTasks,
	SectionCouncil,
	SectionApprovals,
	SectionDiscord,
	SectionContent,
	SectionProjects,
	SectionCalendar,
	SectionMemory,
	SectionDocs,
	SectionPeople,
	SectionOffice,
	SectionTeam,
}

var sectionTitles = map[Section]string{
	SectionHome:      "Home",
	SectionAgents:    "Agents",
	SectionTasks:     "Tasks",
	SectionCouncil:   "Council",
	SectionApprovals: "Approvals",
	SectionDiscord:   "Discord",
	SectionContent:   "Content",
	SectionProjects:  "Projects",
	SectionCalendar:  "Calendar",
	SectionMemory:    "Memory",
	SectionDocs:      "Docs",
	SectionPeople:    "People",
	SectionOffice:    "Office",
	SectionTeam:      "Team",
}

func (s Section) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

func (s Section) IsValid() bool {
	_, ok := sectionTitles[s]
	return ok
}

// IsPlaceholder reports whether the section has no backing data yet
func (s Section) IsPlaceholder() bool {
	switch s {
	case SectionHome, SectionAgents, SectionTasks, SectionDiscord, SectionProjects, SectionCalendar:
		return false
	default:
		return true
	}
}

func (s Section) index() int {
	for i, v := range Sections {
		if v == s {
			return i
		}
	}
	return 0
}
