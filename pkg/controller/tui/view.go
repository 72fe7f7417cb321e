package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/presenter"
)

func (m Model) View() string {
	st := m.presenter.State()

	body := m.renderSection(st)
	if st.PanelOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", renderPanel(st.Snapshot))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		renderTabs(st.Section),
		"",
		body,
		"",
		m.renderStatusBar(st),
	)
}

func (m Model) renderHeader() string {
	now := m.now()
	return titleStyle.Render("Mission Control") + "  " +
		dimStyle.Render(fmt.Sprintf("%s · %s", presenter.Greeting(now), now.Format("Mon Jan 2 15:04")))
}

func renderTabs(active presenter.Section) string {
	tabs := make([]string, 0, len(presenter.Sections))
	for _, s := range presenter.Sections {
		if s == active {
			tabs = append(tabs, activeTabStyle.Render(s.Title()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(s.Title()))
		}
	}
	return strings.Join(tabs, dimStyle.Render(" │ "))
}

func (m Model) renderSection(st presenter.State) string {
	snap := st.Snapshot
	switch st.Section {
	case presenter.SectionHome:
		return renderHome(snap)
	case presenter.SectionAgents:
		return m.renderAgents(snap)
	case presenter.SectionTasks:
		return renderTasks(snap)
	case presenter.SectionProjects:
		return renderProjects(snap)
	case presenter.SectionDiscord:
		return renderDiscord(snap)
	case presenter.SectionCalendar:
		return renderCalendar(snap)
	default:
		return dimStyle.Render(st.Section.Title() + " is not available yet")
	}
}

// unavailable renders a marker for a source the server could not read
func unavailable(snap *dashboard.Snapshot, src dashboard.Source) string {
	if ok, consulted := snap.Availability[src]; consulted && !ok {
		return warnStyle.Render(fmt.Sprintf("  (%s unavailable)", src))
	}
	return ""
}

func renderHome(snap *dashboard.Snapshot) string {
	online := 0
	for _, a := range snap.Agents {
		if a.Active {
			online++
		}
	}
	failing := 0
	for _, j := range snap.CronJobs {
		if j.Status == dashboard.CronStatusError {
			failing++
		}
	}

	lines := []string{
		sectionHdStyle.Render("Overview"),
		fmt.Sprintf("Agents      %d/%d online%s", online, len(snap.Agents), unavailable(snap, dashboard.SourceAgents)),
		fmt.Sprintf("Cron jobs   %d (%d failing)%s", len(snap.CronJobs), failing, unavailable(snap, dashboard.SourceCron)),
		fmt.Sprintf("Sessions    %d active%s", len(snap.ActiveTasks), unavailable(snap, dashboard.SourceSessions)),
		fmt.Sprintf("Projects    %d", len(snap.Projects)),
		fmt.Sprintf("Discord     %s%s", renderBotStatus(snap.Discord), unavailable(snap, dashboard.SourceChannels)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAgents(snap *dashboard.Snapshot) string {
	lines := []string{sectionHdStyle.Render("Agents") + unavailable(snap, dashboard.SourceAgents)}
	for i, a := range snap.Agents {
		marker := "  "
		name := a.Name
		if i == m.cursor {
			marker = "> "
			name = selectedStyle.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%s%-12s %-22s temp %.1f  %s",
			marker, name, a.Role, a.Temp, renderAgentStatus(a)))
	}
	return strings.Join(lines, "\n")
}

func renderAgentStatus(a dashboard.Agent) string {
	if a.Active {
		return onlineStyle.Render("● " + a.Status)
	}
	return offlineStyle.Render("○ " + a.Status)
}

func renderTasks(snap *dashboard.Snapshot) string {
	lines := []string{sectionHdStyle.Render("Active sessions") + unavailable(snap, dashboard.SourceSessions)}
	for _, t := range snap.ActiveTasks {
		lines = append(lines, fmt.Sprintf("  %-10s %-16s in %-7d out %-7d %s  %s",
			t.Agent, t.Model, t.InputTokens, t.OutputTokens, t.Kind, dimStyle.Render(t.UpdatedAt)))
	}

	lines = append(lines, "", sectionHdStyle.Render("Cron jobs")+unavailable(snap, dashboard.SourceCron))
	for _, j := range snap.CronJobs {
		status := onlineStyle.Render(string(j.Status))
		if j.Status == dashboard.CronStatusError {
			status = errorStyle.Render(string(j.Status))
		}
		enabled := "on "
		if !j.Enabled {
			enabled = dimStyle.Render("off")
		}
		lines = append(lines, fmt.Sprintf("  %s %-20s %-7s last %s (%s)",
			enabled, j.Name, status, j.LastRun, j.LastDuration))
	}
	return strings.Join(lines, "\n")
}

func renderProjects(snap *dashboard.Snapshot) string {
	lines := []string{sectionHdStyle.Render("Projects")}
	for _, p := range snap.Projects {
		lines = append(lines, fmt.Sprintf("  %s %-22s %-6s %s", p.Icon, p.Name, p.Status, dimStyle.Render(p.URL)))
	}
	return strings.Join(lines, "\n")
}

func renderDiscord(snap *dashboard.Snapshot) string {
	d := snap.Discord
	lines := []string{
		sectionHdStyle.Render("Discord") + unavailable(snap, dashboard.SourceChannels),
		fmt.Sprintf("  Bot      %s", d.BotName),
		fmt.Sprintf("  App ID   %s", d.AppID),
		fmt.Sprintf("  Status   %s", renderBotStatus(d)),
	}
	for _, s := range d.Servers {
		lines = append(lines, fmt.Sprintf("  Server   %s (%d members, %d channels)", s.Name, s.Members, s.Channels))
	}
	if len(snap.Channels) > 0 {
		lines = append(lines, "", sectionHdStyle.Render("Channels"))
		for _, ch := range snap.Channels {
			lines = append(lines, fmt.Sprintf("  %-12s %-10s %s", ch.Name, ch.Provider, dimStyle.Render(ch.Status)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderBotStatus(d dashboard.Discord) string {
	if d.Connected {
		return onlineStyle.Render(d.Status)
	}
	return offlineStyle.Render(d.Status)
}

func renderCalendar(snap *dashboard.Snapshot) string {
	lines := []string{sectionHdStyle.Render("Schedule") + unavailable(snap, dashboard.SourceCron)}
	for _, j := range snap.CronJobs {
		lines = append(lines, fmt.Sprintf("  %-20s %-16s next %s", j.Name, j.Schedule, j.NextRun))
	}
	return strings.Join(lines, "\n")
}

func renderPanel(snap *dashboard.Snapshot) string {
	flag := func(ok bool) string {
		if ok {
			return onlineStyle.Render("up")
		}
		return errorStyle.Render("down")
	}

	lines := []string{
		sectionHdStyle.Render("System"),
		"Gateway    " + flag(snap.System.Gateway),
		"Tailscale  " + flag(snap.System.Tailscale),
	}
	for _, src := range dashboard.AllSources {
		if ok, consulted := snap.Availability[src]; consulted {
			lines = append(lines, fmt.Sprintf("%-10s %s", src, flag(ok)))
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatusBar(st presenter.State) string {
	var status string
	switch {
	case st.Loading:
		status = "loading..."
	case st.LastErr != nil:
		status = errorStyle.Render("error: " + st.LastErr.Error())
	case st.Fallback:
		status = warnStyle.Render("offline roster")
	case !st.LoadedAt.IsZero():
		status = "updated " + st.LoadedAt.Format("15:04:05")
	}

	return statusBarStyle.Render(status) + "  " + m.help.ShortHelpView(keys.help())
}
