package slider

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/moonui/internal/ui"
)

// PercentAt maps a pointer column onto the track. The track is a row of
// cells: the first cell is 0 and the last cell is 1. Columns outside the
// track give values outside [0, 1]; callers clamp after stepping.
func PercentAt(x int, track ui.Rect) float64 {
	span := track.Width - 1
	if span <= 0 {
		return 0
	}
	return float64(x-track.X) / float64(span)
}

// ValueAt converts a track percentage into a stepped, clamped value.
func ValueAt(percent, min, max, step float64) float64 {
	return Snap(min+percent*(max-min), min, max, step)
}

// Snap moves raw onto the step grid anchored at min, clamps it into
// [min, max] and rounds away floating point drift.
func Snap(raw, min, max, step float64) float64 {
	stepped := raw
	if step > 0 {
		stepped = min + math.Round((raw-min)/step)*step
	}
	return RoundTo(Clamp(stepped, min, max), Precision(step))
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Precision is the number of decimals values are rounded to: the decimals
// of step when step < 1, otherwise zero.
func Precision(step float64) int {
	if step >= 1 || step <= 0 {
		return 0
	}
	text := strconv.FormatFloat(step, 'f', -1, 64)
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	return len(text) - dot - 1
}

// RoundTo rounds v to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// Offset is the position of value along the track as a percentage in
// [0, 100]. A degenerate range (max == min) puts every thumb at 0.
func Offset(value, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return 0
	}
	return Clamp((value-min)/span*100, 0, 100)
}

// Column converts an offset percentage into a cell index on a track of
// width cells.
func Column(offset float64, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(offset / 100 * float64(width-1)))
}
