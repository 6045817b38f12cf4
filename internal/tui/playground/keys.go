package playground

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the playground-wide bindings. Everything else goes to the
// focused section.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Theme key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy value"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Theme, k.Copy, k.Help, k.Quit}}
}

// helpKeys puts the focused section's bindings ahead of the global ones.
type helpKeys struct {
	global  KeyMap
	section help.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	bindings := h.global.ShortHelp()
	if h.section != nil {
		bindings = append(h.section.ShortHelp(), bindings...)
	}
	return bindings
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := h.global.FullHelp()
	if h.section != nil {
		groups = append(h.section.FullHelp(), groups...)
	}
	return groups
}
