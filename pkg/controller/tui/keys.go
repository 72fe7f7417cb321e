package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Panel       key.Binding
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Refresh     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "prev section"),
	),
	Panel: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "panel"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "select"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "select"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", "t"),
		key.WithHelp("t", "toggle agent"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.NextSection, k.Up, k.Toggle, k.Panel, k.Refresh, k.Quit}
}
