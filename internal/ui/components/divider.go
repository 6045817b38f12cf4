package components

import (
	"strings"
)

// Orientation of a separator or radio group.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

const defaultSeparatorLength = 40

// Separator is a thin rule between content. A decorative separator carries
// no semantic role.
type Separator struct {
	BaseComponent
	orientation Orientation
	length      int
	decorative  bool
}

// NewSeparator creates a decorative horizontal separator.
func NewSeparator() *Separator {
	return &Separator{
		BaseComponent: NewBaseComponent(),
		decorative:    true,
	}
}

// VerticalSeparator creates a decorative vertical separator.
func VerticalSeparator() *Separator {
	return NewSeparator().WithOrientation(OrientationVertical)
}

func (s *Separator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the rule. Without an explicit length a horizontal
// rule fills the available width.
func (s *Separator) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	length := s.resolveLength(ctx)
	style := s.ApplyOverrides(s.RawStyle().Foreground(ctx.Theme.Palette.Border), ctx.Theme)

	if s.orientation == OrientationVertical {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", length), "\n"))
	}
	return style.Render(strings.Repeat("─", length))
}

func (s *Separator) resolveLength(ctx RenderContext) int {
	switch {
	case s.length > 0:
		return s.length
	case s.orientation == OrientationVertical:
		return 1
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	case ctx.Constraints.MinWidth > 0:
		return ctx.Constraints.MinWidth
	case ctx.ParentWidth > 0:
		return ctx.ParentWidth
	default:
		return defaultSeparatorLength
	}
}

func (s *Separator) WithOrientation(o Orientation) *Separator {
	s.orientation = o
	return s
}

// WithLength fixes the rule length in cells or rows.
func (s *Separator) WithLength(length int) *Separator {
	s.length = length
	return s
}

func (s *Separator) WithDecorative(decorative bool) *Separator {
	s.decorative = decorative
	return s
}

// Role is "none" for decorative separators and "separator" otherwise.
func (s *Separator) Role() string {
	if s.decorative {
		return "none"
	}
	return "separator"
}

func (s *Separator) Orientation() Orientation {
	return s.orientation
}

func (s *Separator) WithAppliers(appliers ...StyleFunc) *Separator {
	s.AddAppliers(appliers...)
	return s
}

func (s *Separator) WithAttr(key, value string) *Separator {
	s.SetAttr(key, value)
	return s
}
