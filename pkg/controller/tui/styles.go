package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorDim)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

var (
	onlineStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	offlineStyle   = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle      = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle       = lipgloss.NewStyle().Foreground(colorDim)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	sectionHdStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)
