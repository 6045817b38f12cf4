// Package datepicker composes a trigger, a popover and a calendar or month
// grid into DatePicker, DateRangePicker, DateTimePicker and MonthPicker.
//
// Each picker is closed or open. Picking a complete value closes it; escape
// and presses outside the open popover dismiss it. Values follow the same
// rules as the calendar: WithDate and WithDateRange make them parent-owned,
// shown only once the host passes them back through Sync.
package datepicker

import (
	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderFunc adapts a render function to components.ContextualRenderable.
type renderFunc func(ctx components.RenderContext) string

func (f renderFunc) View() string {
	return f(components.DefaultContext())
}

func (f renderFunc) ViewWithContext(ctx components.RenderContext) string {
	return f(ctx)
}

// picker is the trigger and popover plumbing shared by every picker.
type picker struct {
	components.BaseComponent

	id          string
	kind        string
	placeholder string
	format      string
	glyph       func(components.Theme) string

	popover *components.Popover
	focused bool
	keys    KeyMap
	log     *logger.Logger

	ctx     components.RenderContext
	origin  ui.Rect
	trigger ui.Rect
	bounds  ui.Rect

	// label returns the trigger text, or "" for the placeholder.
	label func() string
	// placeContent receives the screen cell where popover content starts.
	placeContent func(x, y int)
	// openChanged lets a picker focus or blur its content.
	openChanged func(open bool)

	pending []tea.Msg
}

func (p *picker) init(kind string, cfg config, content ui.Renderable, label func() string) {
	p.BaseComponent = components.NewBaseComponent()
	p.id = cfg.id
	p.kind = kind
	p.placeholder = cfg.placeholder
	p.format = cfg.format
	p.keys = cfg.keys
	p.log = cfg.log.WithComponent(kind + "-picker")
	p.label = label
	p.ctx = components.DefaultContext()
	p.glyph = func(theme components.Theme) string { return theme.Glyphs.Calendar }
	p.popover = components.NewPopover(renderFunc(p.renderTrigger), content).
		WithOnOpenChange(p.handleOpenChange)
}

func (p *picker) handleOpenChange(open bool) {
	if open {
		p.log.Debug("picker opened", "id", p.id)
	} else {
		p.log.Debug("picker closed", "id", p.id)
	}
	if p.openChanged != nil {
		p.openChanged(open)
	}
	p.place()
}

// Open shows the popover.
func (p *picker) Open() { p.popover.Open() }

// Close hides the popover.
func (p *picker) Close() { p.popover.Close() }

// Toggle flips the popover.
func (p *picker) Toggle() { p.popover.Toggle() }

// IsOpen reports whether the popover is showing.
func (p *picker) IsOpen() bool { return p.popover.IsOpen() }

// Focus lets the trigger receive keys.
func (p *picker) Focus() { p.focused = true }

func (p *picker) Blur() { p.focused = false }

func (p *picker) Focused() bool { return p.focused }

// ID returns the identifier carried by emitted messages.
func (p *picker) ID() string { return p.id }

// Label returns the trigger text: the formatted value or the placeholder.
func (p *picker) Label() string {
	if text := p.label(); text != "" {
		return text
	}
	return p.placeholder
}

// KeyMap returns the trigger bindings.
func (p *picker) KeyMap() KeyMap { return p.keys }

// SetOrigin records where the picker's top-left corner was drawn, for mouse
// hit-testing of the trigger and the open popover.
func (p *picker) SetOrigin(x, y int) {
	p.origin = ui.Rect{X: x, Y: y}
	p.place()
}

// TriggerBounds is the clickable trigger area.
func (p *picker) TriggerBounds() ui.Rect { return p.trigger }

// Bounds is the area of the whole picker as last placed.
func (p *picker) Bounds() ui.Rect { return p.bounds }

// place recomputes hit areas from the current view.
func (p *picker) place() {
	ctx := p.ctx.Normalized()
	x, y := p.origin.X, p.origin.Y

	trigger := p.renderTrigger(ctx)
	p.trigger = ui.Rect{X: x, Y: y, Width: lipgloss.Width(trigger), Height: lipgloss.Height(trigger)}

	view := p.popover.ViewWithContext(ctx)
	p.bounds = ui.Rect{X: x, Y: y, Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
	p.popover.SetBounds(p.bounds)

	if p.placeContent != nil {
		p.placeContent(p.popover.OverlayOrigin(ctx, x, y))
	}
}

func (p *picker) renderTrigger(ctx components.RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme

	variant := components.SurfaceTrigger
	if p.focused {
		variant = components.SurfaceTriggerFocused
	}
	style := p.ApplyOverrides(components.VariantStyle(theme, variant), theme)

	text := p.label()
	if text == "" {
		text = components.TypographyStyle(theme, components.TypographyVariantMuted).Render(p.placeholder)
	}
	return style.Render(p.glyph(theme) + " " + text)
}

func (p *picker) view(ctx components.RenderContext) string {
	p.ctx = ctx
	return p.popover.ViewWithContext(ctx)
}

// route handles the trigger and dismissal, handing everything aimed at
// the open popover to content.
func (p *picker) route(msg tea.Msg, content func(tea.Msg)) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case p.IsOpen() && key.Matches(msg, p.keys.Close):
			p.Close()
		case p.IsOpen():
			content(msg)
		case p.focused && key.Matches(msg, p.keys.Open):
			p.Open()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		switch {
		case p.trigger.Contains(msg.X, msg.Y):
			p.Toggle()
		case p.IsOpen() && p.bounds.Contains(msg.X, msg.Y):
			content(msg)
		case p.IsOpen():
			p.popover.Update(msg)
		}
	}
	if p.IsOpen() {
		p.place()
	}
	return p.flush()
}

// emit queues a message for the command returned by the next Update.
func (p *picker) emit(msg tea.Msg) {
	p.pending = append(p.pending, msg)
}

func (p *picker) flush() tea.Cmd {
	if len(p.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(p.pending))
	for i, msg := range p.pending {
		cmds[i] = func() tea.Msg { return msg }
	}
	p.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
