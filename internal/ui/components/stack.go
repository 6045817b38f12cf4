package components

import (
	"strings"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with a fixed gap.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	align       Alignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children joined along the stack direction.
// Empty child views take no space and add no gap.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	bounds := s.merge(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(bounds))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := RenderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if bounds.MaxWidth > 0 {
		style = style.MaxWidth(bounds.MaxWidth)
	}
	if bounds.MaxHeight > 0 {
		style = style.MaxHeight(bounds.MaxHeight)
	}
	if len(views) == 0 {
		return style.Render("")
	}
	return style.Render(s.join(views))
}

func (s *Stack) join(views []string) string {
	if s.direction == DirectionHorizontal {
		if s.gap > 0 {
			spaced := make([]string, 0, len(views)*2-1)
			spacer := strings.Repeat(" ", s.gap)
			for i, view := range views {
				if i > 0 {
					spaced = append(spaced, spacer)
				}
				spaced = append(spaced, view)
			}
			views = spaced
		}
		return lipgloss.JoinHorizontal(s.crossPosition(), views...)
	}

	if s.gap > 0 {
		spaced := make([]string, 0, len(views)*2-1)
		spacer := strings.Repeat("\n", s.gap-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	return lipgloss.JoinVertical(s.align.ToLipglossPosition(), views...)
}

// crossPosition maps the alignment onto the vertical axis of a row.
func (s *Stack) crossPosition() lipgloss.Position {
	switch s.align {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// merge narrows the parent bounds with the stack's own.
func (s *Stack) merge(parent Constraints) Constraints {
	out := parent
	if s.constraints.MaxWidth > 0 && (out.MaxWidth <= 0 || s.constraints.MaxWidth < out.MaxWidth) {
		out.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (out.MaxHeight <= 0 || s.constraints.MaxHeight < out.MaxHeight) {
		out.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > out.MinWidth {
		out.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > out.MinHeight {
		out.MinHeight = s.constraints.MinHeight
	}
	return out
}

// childConstraints splits the width of a row evenly between children.
func (s *Stack) childConstraints(bounds Constraints) Constraints {
	child := bounds
	if s.direction == DirectionHorizontal && bounds.MaxWidth > 0 && len(s.children) > 0 {
		available := bounds.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	child.MinWidth = 0
	return child
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(direction Direction) *Stack {
	s.direction = direction
	return s
}

// WithGap sets the cells between children: columns in a row, blank lines in
// a column.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAlign positions children across the stack axis.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

func (s *Stack) WithConstraints(c Constraints) *Stack {
	s.constraints = c
	return s
}

// Append adds children.
func (s *Stack) Append(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

func (s *Stack) WithAttr(key, value string) *Stack {
	s.SetAttr(key, value)
	return s
}
