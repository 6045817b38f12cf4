package calendar

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/jinzhu/now"
)

// Day is one cell of the month grid. Empty cells are placeholders before
// the first of the month when outside days are hidden.
type Day struct {
	Date    time.Time
	InMonth bool
	Empty   bool
}

// MonthStart returns midnight on the first of t's month.
func MonthStart(t time.Time) time.Time {
	return DayOf(now.With(t).BeginningOfMonth())
}

// BuildWeeks lays out month as rows of seven days starting on weekStart.
//
// With showOutside, the first and last rows are completed with days from
// the adjacent months. Without it, leading gaps are Empty cells and the last
// row stops at the end of the month, so row count and last-row length vary.
func BuildWeeks(month time.Time, weekStart time.Weekday, showOutside bool) [][]Day {
	cfg := &now.Config{WeekStartDay: weekStart, TimeLocation: month.Location()}

	first := DayOf(cfg.With(month).BeginningOfMonth())
	last := DayOf(cfg.With(month).EndOfMonth())
	gridStart := DayOf(cfg.With(first).BeginningOfWeek())
	gridEnd := DayOf(cfg.With(last).EndOfWeek())

	var days []Day
	if showOutside {
		for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
			days = append(days, Day{Date: d, InMonth: SameMonth(d, first)})
		}
	} else {
		for d := gridStart; d.Before(first); d = d.AddDate(0, 0, 1) {
			days = append(days, Day{Empty: true})
		}
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			days = append(days, Day{Date: d, InMonth: true})
		}
	}

	weeks := make([][]Day, 0, (len(days)+6)/7)
	for len(days) > 0 {
		n := 7
		if len(days) < n {
			n = len(days)
		}
		weeks = append(weeks, days[:n:n])
		days = days[n:]
	}
	return weeks
}

// Weekdays lists the weekday order for weekStart.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = (weekStart + time.Weekday(i)) % 7
	}
	return out
}

// DayState is the classification of one rendered day. Flags are
// independent; Variant picks the one that wins for styling.
type DayState struct {
	OutsideMonth bool
	Disabled     bool
	Selected     bool
	Today        bool
	RangeStart   bool
	RangeEnd     bool
	RangeMiddle  bool
	Cursor       bool
}

// Variant maps the state to a theme variant. Range ends beat range middles,
// which beat plain selection, then today, disabled and outside days.
func (s DayState) Variant() components.DayVariant {
	switch {
	case s.RangeStart || s.RangeEnd:
		return components.DayRangeEdge
	case s.RangeMiddle:
		return components.DayRangeMiddle
	case s.Selected:
		return components.DaySelected
	case s.Disabled:
		return components.DayDisabled
	case s.OutsideMonth:
		return components.DayOutside
	case s.Today:
		return components.DayToday
	default:
		return components.DayDefault
	}
}

// Classify computes the state of date for a calendar showing month.
func Classify(date, month, today time.Time, mode Mode, selected Selection, disabled func(time.Time) bool) DayState {
	state := DayState{
		OutsideMonth: !SameMonth(date, month),
		Today:        SameDay(date, today),
	}
	if disabled != nil {
		state.Disabled = disabled(date)
	}

	switch mode {
	case ModeSingle:
		state.Selected = SameDay(date, selected.Date)

	case ModeRange:
		r := selected.Range
		state.Selected = r.Contains(date)
		state.RangeStart = SameDay(date, r.From)
		state.RangeEnd = SameDay(date, r.To)
		if r.IsComplete() {
			d := DayOf(date)
			state.RangeMiddle = d.After(DayOf(r.From)) && d.Before(DayOf(r.To))
		}

	case ModeMultiple:
		for _, d := range selected.Dates {
			if SameDay(date, d) {
				state.Selected = true
				break
			}
		}
	}

	return state
}
