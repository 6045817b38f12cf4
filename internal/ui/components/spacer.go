package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spacer is a blank block. A zero width fills the available width.
type Spacer struct {
	BaseComponent
	width  int
	height int
}

func NewSpacer(width, height int) *Spacer {
	return &Spacer{
		BaseComponent: NewBaseComponent(),
		width:         max(0, width),
		height:        max(1, height),
	}
}

// HorizontalSpacer is a one-row gap of width cells.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer is a gap of height empty rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.Normalized()
	width := s.width
	if width == 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return s.ApplyOverrides(s.RawStyle(), ctx.Theme).Render(strings.Join(rows, "\n"))
}

// Size returns the configured width and height.
func (s *Spacer) Size() (int, int) {
	return s.width, s.height
}

func (s *Spacer) WithAppliers(appliers ...StyleFunc) *Spacer {
	s.AddAppliers(appliers...)
	return s
}

func lipglossWidth(view string) int {
	return lipgloss.Width(view)
}
