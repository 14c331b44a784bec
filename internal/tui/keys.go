package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Reset   key.Binding
	Restart key.Binding
	Delete  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new passage"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "restart"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// helpFor returns the bindings worth showing in the current state.
func (k keyMap) helpFor(completed bool) []key.Binding {
	if completed {
		return []key.Binding{k.Restart, k.Reset, k.Quit}
	}
	return []key.Binding{k.Delete, k.Reset, k.Quit}
}
