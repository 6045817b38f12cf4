package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Popover pairs a trigger with floating content shown below it while open.
// Escape and presses outside the recorded bounds dismiss it.
type Popover struct {
	BaseComponent
	trigger      ui.Renderable
	content      ui.Renderable
	open         bool
	align        Alignment
	onOpenChange func(bool)
	bounds       ui.Rect
}

func NewPopover(trigger, content ui.Renderable) *Popover {
	return &Popover{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		content:       content,
	}
}

func (p *Popover) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, while open, the content surface
// underneath it.
func (p *Popover) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	trigger := RenderChild(p.trigger, ctx)
	if !p.open {
		return trigger
	}
	return lipgloss.JoinVertical(p.align.ToLipglossPosition(), trigger, p.Overlay(ctx))
}

// Overlay renders only the content surface, for hosts that place it
// themselves.
func (p *Popover) Overlay(ctx RenderContext) string {
	ctx = ctx.Normalized()
	style := p.ApplyOverrides(ApplyVariant(p.RawStyle(), ctx.Theme, SurfacePopover), ctx.Theme)
	return style.Render(RenderChild(p.content, ctx))
}

// TriggerHeight is the number of rows the trigger takes, which is where the
// overlay starts.
func (p *Popover) TriggerHeight(ctx RenderContext) int {
	return lipgloss.Height(RenderChild(p.trigger, ctx.Normalized()))
}

// OverlayOrigin is the top-left cell of the overlay frame's interior, given
// where the popover itself was drawn.
func (p *Popover) OverlayOrigin(ctx RenderContext, x, y int) (int, int) {
	ctx = ctx.Normalized()
	style := p.ApplyOverrides(ApplyVariant(p.RawStyle(), ctx.Theme, SurfacePopover), ctx.Theme)
	left := style.GetBorderLeftSize() + style.GetPaddingLeft() + style.GetMarginLeft()
	top := style.GetBorderTopSize() + style.GetPaddingTop() + style.GetMarginTop()
	return x + left, y + p.TriggerHeight(ctx) + top
}

// Update dismisses the popover on escape, and on a press outside the bounds
// set with SetBounds.
func (p *Popover) Update(msg tea.Msg) (*Popover, tea.Cmd) {
	if !p.open {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			p.Close()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !p.bounds.IsZero() && !p.bounds.Contains(msg.X, msg.Y) {
			p.Close()
		}
	}
	return p, nil
}

func (p *Popover) Open()  { p.SetOpen(true) }
func (p *Popover) Close() { p.SetOpen(false) }

func (p *Popover) Toggle() {
	p.SetOpen(!p.open)
}

// SetOpen changes the open state and reports actual changes.
func (p *Popover) SetOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	if p.onOpenChange != nil {
		p.onOpenChange(open)
	}
}

func (p *Popover) IsOpen() bool {
	return p.open
}

// SetBounds records the screen area of the open popover for outside-press
// dismissal.
func (p *Popover) SetBounds(bounds ui.Rect) {
	p.bounds = bounds
}

func (p *Popover) SetTrigger(trigger ui.Renderable) {
	p.trigger = trigger
}

func (p *Popover) SetContent(content ui.Renderable) {
	p.content = content
}

func (p *Popover) WithAlign(align Alignment) *Popover {
	p.align = align
	return p
}

func (p *Popover) WithOnOpenChange(fn func(bool)) *Popover {
	p.onOpenChange = fn
	return p
}

func (p *Popover) WithAppliers(appliers ...StyleFunc) *Popover {
	p.AddAppliers(appliers...)
	return p
}

func (p *Popover) WithAttr(key, value string) *Popover {
	p.SetAttr(key, value)
	return p
}
