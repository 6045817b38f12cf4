package components

import (
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// RenderMode decides whether a component draws its own content or lends its
// styling to a child supplied by the consumer. The zero value renders as
// self.
type RenderMode struct {
	child ui.Renderable
}

// RenderAsSelf renders the component's own content.
func RenderAsSelf() RenderMode {
	return RenderMode{}
}

// RenderAsChild renders child in place of the component's content, wrapped
// in the component's computed style.
func RenderAsChild(child ui.Renderable) RenderMode {
	return RenderMode{child: child}
}

// Child returns the child for RenderAsChild modes.
func (m RenderMode) Child() (ui.Renderable, bool) {
	return m.child, m.child != nil
}

// IsChild reports whether the mode delegates to a child.
func (m RenderMode) IsChild() bool {
	return m.child != nil
}

// render resolves the mode: self content or the child, both drawn with style.
func (m RenderMode) render(style lipgloss.Style, ctx RenderContext, self string) string {
	if m.child == nil {
		return style.Render(self)
	}
	return style.Render(RenderChild(m.child, ctx))
}
