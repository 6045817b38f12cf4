package calendar

import "time"

// Mode decides how a click on a day changes the selection.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModeRange:
		return "range"
	case ModeMultiple:
		return "multiple"
	default:
		return "single"
	}
}

// DateRange is an interval of days. A zero From or To is unset.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsEmpty reports whether neither end is set.
func (r DateRange) IsEmpty() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// IsOpen reports whether the range has a start but no end yet.
func (r DateRange) IsOpen() bool {
	return !r.From.IsZero() && r.To.IsZero()
}

// IsComplete reports whether both ends are set.
func (r DateRange) IsComplete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains reports whether day falls within [From, To]. An open range
// contains only its start.
func (r DateRange) Contains(day time.Time) bool {
	if r.From.IsZero() {
		return false
	}
	if r.To.IsZero() {
		return SameDay(r.From, day)
	}
	d := DayOf(day)
	return !d.Before(DayOf(r.From)) && !d.After(DayOf(r.To))
}

// Selection holds the selected value for every mode. Only the field that
// matches the calendar's mode is meaningful.
type Selection struct {
	Date  time.Time
	Range DateRange
	Dates []time.Time
}

// SingleSelection selects one day.
func SingleSelection(day time.Time) Selection {
	return Selection{Date: day}
}

// RangeSelection selects an interval.
func RangeSelection(from, to time.Time) Selection {
	return Selection{Range: DateRange{From: from, To: to}}
}

// IsEmpty reports whether nothing is selected for mode.
func (s Selection) IsEmpty(mode Mode) bool {
	switch mode {
	case ModeRange:
		return s.Range.IsEmpty()
	case ModeMultiple:
		return len(s.Dates) == 0
	default:
		return s.Date.IsZero()
	}
}

// Anchor is the first selected day, used to pick the initial month.
func (s Selection) Anchor() time.Time {
	switch {
	case !s.Date.IsZero():
		return s.Date
	case !s.Range.From.IsZero():
		return s.Range.From
	case len(s.Dates) > 0:
		return s.Dates[0]
	default:
		return time.Time{}
	}
}

// Next computes the selection that results from clicking day.
//
// Single mode replaces the date. Range mode is a two-state machine: with no
// open range, a click starts {day, unset}; with an open range, a click
// closes it, swapping the ends when day precedes the start. A click after a
// complete range always starts a new one. Multiple mode has no click
// behaviour and reports false.
func Next(mode Mode, current Selection, day time.Time) (Selection, bool) {
	day = DayOf(day)

	switch mode {
	case ModeSingle:
		return SingleSelection(day), true

	case ModeRange:
		r := current.Range
		if !r.IsOpen() {
			return RangeSelection(day, time.Time{}), true
		}
		from := DayOf(r.From)
		if day.Before(from) {
			return RangeSelection(day, from), true
		}
		return RangeSelection(from, day), true

	default:
		return current, false
	}
}

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar dates, ignoring time of day.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth compares year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
