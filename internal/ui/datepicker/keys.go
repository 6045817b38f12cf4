package datepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the trigger bindings. Bindings inside the popover belong to
// the calendar or list it shows.
type KeyMap struct {
	Open     key.Binding
	Close    key.Binding
	OpenTime key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		OpenTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "pick time"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Open, k.Close, k.OpenTime}}
}
