package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Collapsible shows a trigger line and, while open, its content indented
// below it.
type Collapsible struct {
	BaseComponent
	trigger      string
	content      ui.Renderable
	open         control.Value[bool]
	onOpenChange func(bool)
	disabled     bool
	focused      bool
}

func NewCollapsible(trigger string, content ui.Renderable) *Collapsible {
	return &Collapsible{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		content:       content,
		open:          control.Uncontrolled(false),
	}
}

func (c *Collapsible) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Collapsible) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme

	marker := theme.Glyphs.Collapsed
	if c.open.Get() {
		marker = theme.Glyphs.Expanded
	}
	header := TypographyStyle(theme, TypographyVariantLabel)
	if c.focused {
		header = ApplyVariant(header, theme, ToggleFocused)
	}
	if c.disabled {
		header = ApplyVariant(header, theme, ToggleDisabled)
	}
	line := header.Render(marker + " " + c.trigger)

	style := c.ComputeStyle(theme)
	if !c.open.Get() || c.content == nil {
		return style.Render(line)
	}
	body := lipgloss.NewStyle().PaddingLeft(2).Render(RenderChild(c.content, ctx))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, line, body))
}

// Update toggles on enter or space while focused.
func (c *Collapsible) Update(msg tea.Msg) (*Collapsible, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && c.focused {
		if key.Type == tea.KeyEnter || key.String() == " " {
			c.Toggle()
		}
	}
	return c, nil
}

// Toggle proposes the opposite open state. Disabled collapsibles ignore it.
func (c *Collapsible) Toggle() bool {
	if c.disabled {
		return false
	}
	next := !c.open.Get()
	c.open.Propose(next)
	if c.onOpenChange != nil {
		c.onOpenChange(next)
	}
	return true
}

// WithOpen makes the open state parent-owned.
func (c *Collapsible) WithOpen(open bool) *Collapsible {
	c.open = control.Controlled(open)
	return c
}

func (c *Collapsible) WithDefaultOpen(open bool) *Collapsible {
	c.open = control.Uncontrolled(open)
	return c
}

func (c *Collapsible) WithOnOpenChange(fn func(bool)) *Collapsible {
	c.onOpenChange = fn
	return c
}

func (c *Collapsible) WithDisabled(disabled bool) *Collapsible {
	c.disabled = disabled
	return c
}

func (c *Collapsible) WithAppliers(appliers ...StyleFunc) *Collapsible {
	c.AddAppliers(appliers...)
	return c
}

func (c *Collapsible) WithAttr(key, value string) *Collapsible {
	c.SetAttr(key, value)
	return c
}

func (c *Collapsible) Sync(open bool) { c.open.Sync(open) }
func (c *Collapsible) IsOpen() bool   { return c.open.Get() }
func (c *Collapsible) Focus()         { c.focused = true }
func (c *Collapsible) Blur()          { c.focused = false }
