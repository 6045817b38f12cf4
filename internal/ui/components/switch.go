package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
)

// Switch is an on/off toggle drawn as a sliding knob.
type Switch struct {
	toggle
}

func NewSwitch(label string) *Switch {
	return &Switch{toggle: newToggle(label)}
}

func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Switch) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	return s.render(ctx, theme.Glyphs.SwitchOn, theme.Glyphs.SwitchOff)
}

func (s *Switch) Update(msg tea.Msg) (*Switch, tea.Cmd) {
	s.handle(msg)
	return s, nil
}

func (s *Switch) Toggle() bool {
	return s.flip()
}

func (s *Switch) WithChecked(on bool) *Switch {
	s.checked = control.Controlled(on)
	return s
}

func (s *Switch) WithDefaultChecked(on bool) *Switch {
	s.checked = control.Uncontrolled(on)
	return s
}

func (s *Switch) WithOnCheckedChange(fn func(bool)) *Switch {
	s.onChange = fn
	return s
}

func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

func (s *Switch) WithAppliers(appliers ...StyleFunc) *Switch {
	s.AddAppliers(appliers...)
	return s
}

func (s *Switch) WithAttr(key, value string) *Switch {
	s.SetAttr(key, value)
	return s
}

func (s *Switch) Sync(on bool)  { s.checked.Sync(on) }
func (s *Switch) Checked() bool { return s.checked.Get() }
func (s *Switch) Focus()        { s.focused = true }
func (s *Switch) Blur()         { s.focused = false }

// Role is "switch"; the checked state is reported by Checked.
func (s *Switch) Role() string {
	return "switch"
}
