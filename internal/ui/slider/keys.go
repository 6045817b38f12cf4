package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the slider's keyboard bindings.
type KeyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	PageDecrease key.Binding
	PageIncrease key.Binding
	Home         key.Binding
	End          key.Binding
	NextThumb    key.Binding
	PrevThumb    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "down"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "up"),
			key.WithHelp("→/l", "increase"),
		),
		PageDecrease: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "-10 steps"),
		),
		PageIncrease: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "+10 steps"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "minimum"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "maximum"),
		),
		NextThumb: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next thumb"),
		),
		PrevThumb: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous thumb"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.NextThumb}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase, k.PageDecrease, k.PageIncrease},
		{k.Home, k.End, k.NextThumb, k.PrevThumb},
	}
}
