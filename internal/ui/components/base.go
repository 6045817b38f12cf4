package components

import (
	"sort"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the raw style, the consumer's style strategy and the
// pass-through attributes shared by every component.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
	attrs    map[string]string
}

// StyleStrategy computes a style from a base style and a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every function over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle applies the consumer strategy to the raw style.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.ApplyOverrides(b.style, theme)
}

// ApplyOverrides runs the consumer strategy over a style the component has
// already built from its variant. Overrides always come last, so consumers
// can extend the generated style but the variant never undoes their changes.
func (b *BaseComponent) ApplyOverrides(style lipgloss.Style, theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return style
	}
	return b.strategy.Apply(style, theme)
}

// RawStyle returns the style set with SetStyle.
func (b *BaseComponent) RawStyle() lipgloss.Style {
	return b.style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the current strategy. A custom
// strategy is wrapped rather than dropped.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// SetAttr stores a pass-through attribute. Attributes are never rendered;
// hosts read them to label, test or route components.
func (b *BaseComponent) SetAttr(key, value string) {
	if b.attrs == nil {
		b.attrs = make(map[string]string)
	}
	b.attrs[key] = value
}

// Attr returns a pass-through attribute.
func (b *BaseComponent) Attr(key string) (string, bool) {
	value, ok := b.attrs[key]
	return value, ok
}

// Attrs returns a copy of all pass-through attributes.
func (b *BaseComponent) Attrs() map[string]string {
	out := make(map[string]string, len(b.attrs))
	for k, v := range b.attrs {
		out[k] = v
	}
	return out
}

// AttrKeys lists attribute keys in sorted order.
func (b *BaseComponent) AttrKeys() []string {
	keys := make([]string, 0, len(b.attrs))
	for k := range b.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing uses size on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing uses one value vertically and one horizontally.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Horizontal is left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical is top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

func (s Spacing) apply(style lipgloss.Style, margin bool) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if margin {
		return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bound the size a component may render at. -1 means unbounded.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth fixes the width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth caps the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth != -1 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight != -1 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// HasWidth reports whether a width bound is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme and layout bounds through a render pass.
// Passing the theme explicitly keeps rendering free of global state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext uses the default theme with no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme.Normalize()
	return r
}

// WithConstraints returns a copy using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// Normalized fills in a zero-value theme.
func (r RenderContext) Normalized() RenderContext {
	if r.Theme.Variants == nil {
		r.Theme = r.Theme.Normalize()
		if r.Theme.Palette == (Palette{}) {
			r.Theme = DefaultTheme()
		}
	}
	if r.Constraints == (Constraints{}) {
		r.Constraints = Unconstrained()
	}
	return r
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderChild renders child with ctx when it supports contexts.
func RenderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment positions content inside the space it is given.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
