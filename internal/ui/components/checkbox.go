package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toggle is the on/off state shared by Checkbox and Switch.
type toggle struct {
	BaseComponent
	label    string
	checked  control.Value[bool]
	onChange func(bool)
	disabled bool
	focused  bool
}

func newToggle(label string) toggle {
	return toggle{
		BaseComponent: NewBaseComponent(),
		label:         label,
		checked:       control.Uncontrolled(false),
	}
}

// flip proposes the inverted value and reports it. Disabled toggles are
// left alone.
func (t *toggle) flip() bool {
	if t.disabled {
		return false
	}
	next := !t.checked.Get()
	t.checked.Propose(next)
	if t.onChange != nil {
		t.onChange(next)
	}
	return true
}

func (t *toggle) handle(msg tea.Msg) {
	if key, ok := msg.(tea.KeyMsg); ok && t.focused {
		if key.Type == tea.KeyEnter || key.String() == " " {
			t.flip()
		}
	}
}

func (t *toggle) style(theme Theme) lipgloss.Style {
	variant := ToggleOff
	if t.checked.Get() {
		variant = ToggleOn
	}
	style := ApplyVariant(t.RawStyle(), theme, variant)
	if t.disabled {
		style = ApplyVariant(style, theme, ToggleDisabled)
	}
	if t.focused {
		style = ApplyVariant(style, theme, ToggleFocused)
	}
	return t.ApplyOverrides(style, theme)
}

func (t *toggle) render(ctx RenderContext, on, off string) string {
	ctx = ctx.Normalized()
	glyph := off
	if t.checked.Get() {
		glyph = on
	}
	out := t.style(ctx.Theme).Render(glyph)
	if t.label != "" {
		out += " " + t.label
	}
	return out
}

// Checkbox is a labelled boolean.
type Checkbox struct {
	toggle
}

// NewCheckbox creates an unchecked checkbox that owns its state.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{toggle: newToggle(label)}
}

func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Normalized().Theme
	return c.render(ctx, theme.Glyphs.CheckboxOn, theme.Glyphs.CheckboxOff)
}

// Update flips the checkbox on enter or space while focused.
func (c *Checkbox) Update(msg tea.Msg) (*Checkbox, tea.Cmd) {
	c.handle(msg)
	return c, nil
}

// Toggle flips the checkbox as a click would.
func (c *Checkbox) Toggle() bool {
	return c.flip()
}

// WithChecked makes the value parent-owned.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = control.Controlled(checked)
	return c
}

// WithDefaultChecked sets the initial value of a self-owned checkbox.
func (c *Checkbox) WithDefaultChecked(checked bool) *Checkbox {
	c.checked = control.Uncontrolled(checked)
	return c
}

func (c *Checkbox) WithOnCheckedChange(fn func(bool)) *Checkbox {
	c.onChange = fn
	return c
}

func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

func (c *Checkbox) WithAppliers(appliers ...StyleFunc) *Checkbox {
	c.AddAppliers(appliers...)
	return c
}

func (c *Checkbox) WithAttr(key, value string) *Checkbox {
	c.SetAttr(key, value)
	return c
}

// Sync mirrors a parent-owned value.
func (c *Checkbox) Sync(checked bool) {
	c.checked.Sync(checked)
}

func (c *Checkbox) Checked() bool  { return c.checked.Get() }
func (c *Checkbox) Disabled() bool { return c.disabled }
func (c *Checkbox) Label() string  { return c.label }
func (c *Checkbox) Focus()         { c.focused = true }
func (c *Checkbox) Blur()          { c.focused = false }

// State is the data-state attribute value: "checked" or "unchecked".
func (c *Checkbox) State() string {
	if c.checked.Get() {
		return "checked"
	}
	return "unchecked"
}
