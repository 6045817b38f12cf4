package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Side places floating content relative to its trigger.
type Side int

const (
	SideTop Side = iota
	SideBottom
)

// Tooltip shows a short hint next to its trigger while visible.
type Tooltip struct {
	BaseComponent
	trigger ui.Renderable
	content string
	side    Side
	visible bool
}

func NewTooltip(trigger ui.Renderable, content string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		content:       content,
	}
}

func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	trigger := RenderChild(t.trigger, ctx)
	if !t.visible || t.content == "" {
		return trigger
	}

	tip := t.ApplyOverrides(ApplyVariant(t.RawStyle(), ctx.Theme, SurfaceTooltip), ctx.Theme).Render(t.content)
	if t.side == SideBottom {
		return lipgloss.JoinVertical(lipgloss.Left, trigger, tip)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tip, trigger)
}

func (t *Tooltip) Show()           { t.visible = true }
func (t *Tooltip) Hide()           { t.visible = false }
func (t *Tooltip) Visible() bool   { return t.visible }
func (t *Tooltip) Content() string { return t.content }

func (t *Tooltip) WithSide(side Side) *Tooltip {
	t.side = side
	return t
}

func (t *Tooltip) WithAppliers(appliers ...StyleFunc) *Tooltip {
	t.AddAppliers(appliers...)
	return t
}

func (t *Tooltip) WithAttr(key, value string) *Tooltip {
	t.SetAttr(key, value)
	return t
}
