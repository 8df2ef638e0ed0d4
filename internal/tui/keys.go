package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Present key.Binding
	Dismiss key.Binding
	Expand  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Present: key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "present")),
		Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		Expand:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Present, k.Dismiss, k.Expand, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
