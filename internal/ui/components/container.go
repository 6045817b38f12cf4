package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
)

// Container is a box around a stack of children. Card, Alert and the
// popover surfaces build on it.
type Container struct {
	BaseComponent
	layout  *Stack
	variant interface{}
	border  BorderVariant
	padding Spacing
	margin  Spacing
}

// NewContainer creates a borderless vertical container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the container's frame. The
// frame renders even with no children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	style := ApplyVariant(c.RawStyle(), ctx.Theme, c.variant)
	if c.border != BorderVariantNone {
		style = Border(c.border)(style, ctx.Theme)
	}
	style = c.padding.apply(style, false)
	style = c.margin.apply(style, true)
	style = c.ApplyOverrides(style, ctx.Theme)

	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		frame := style.GetHorizontalFrameSize()
		if ctx.Constraints.MaxWidth > frame {
			inner = ctx.WithConstraints(WithMaxWidth(ctx.Constraints.MaxWidth - frame))
		}
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// WithVariant styles the container with a registered variant, such as
// SurfaceCard or an AlertVariant.
func (c *Container) WithVariant(variant interface{}) *Container {
	c.variant = variant
	return c
}

// WithBorder draws a themed border.
func (c *Container) WithBorder(border BorderVariant) *Container {
	c.border = border
	return c
}

func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

func (c *Container) WithAlign(align Alignment) *Container {
	c.layout.WithAlign(align)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Append(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Layout returns the inner stack.
func (c *Container) Layout() *Stack {
	return c.layout
}

func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

func (c *Container) WithAttr(key, value string) *Container {
	c.SetAttr(key, value)
	return c
}
