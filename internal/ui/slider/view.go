package slider

import (
	"strings"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
)

type cell struct {
	glyph string
	part  components.SliderPart
}

// View renders the slider with the default theme.
func (s *Slider) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the track, the filled range up to the first
// thumb, and every thumb.
func (s *Slider) ViewWithContext(ctx components.RenderContext) string {
	ctx = ctx.Normalized()
	theme := ctx.Theme
	glyphs := theme.Glyphs

	cells := make([]cell, s.trackWidth)
	for i := range cells {
		cells[i] = cell{glyph: glyphs.TrackEmpty, part: components.SliderTrack}
	}

	columns := s.thumbColumns()
	if len(columns) > 0 {
		for i := 0; i < columns[0]; i++ {
			cells[i] = cell{glyph: glyphs.TrackFilled, part: components.SliderRange}
		}
	}

	dragged, dragging := s.DraggedThumb()
	for i, col := range columns {
		c := cell{glyph: glyphs.Thumb, part: components.SliderThumb}
		switch {
		case dragging && i == dragged:
			c = cell{glyph: glyphs.ThumbFocused, part: components.SliderThumbDragging}
		case s.focused && i == s.focusIndex:
			c = cell{glyph: glyphs.ThumbFocused, part: components.SliderThumbFocused}
		}
		cells[col] = c
	}

	var b strings.Builder
	for start := 0; start < len(cells); {
		end := start
		var run strings.Builder
		for end < len(cells) && cells[end].part == cells[start].part {
			run.WriteString(cells[end].glyph)
			end++
		}

		style := components.VariantStyle(theme, cells[start].part)
		if s.disabled {
			style = components.ApplyVariant(style, theme, components.SliderDisabled)
		}
		b.WriteString(style.Render(run.String()))
		start = end
	}

	return s.ApplyOverrides(s.RawStyle(), theme).Render(b.String())
}

// thumbColumns maps each value onto a track cell.
func (s *Slider) thumbColumns() []int {
	values := s.values.Get()
	columns := make([]int, len(values))
	for i, v := range values {
		columns[i] = Column(Offset(v, s.min, s.max), s.trackWidth)
	}
	return columns
}

// thumbAt finds the thumb drawn at pointer column x. Later thumbs are drawn
// on top, so they win when thumbs overlap.
func (s *Slider) thumbAt(x int) (int, bool) {
	col := x - s.bounds.X
	columns := s.thumbColumns()
	for i := len(columns) - 1; i >= 0; i-- {
		if columns[i] == col {
			return i, true
		}
	}
	return 0, false
}
