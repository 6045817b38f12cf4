package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
)

// DateRangePicker picks a from/to range. The popover stays open after the
// first day and closes once both ends are set.
type DateRangePicker struct {
	picker
	calendar *calendar.Calendar
	value    control.Value[calendar.DateRange]
	onChange func(calendar.DateRange)
}

// NewDateRangePicker creates a picker showing "Pick a date range" until a
// range is started, then "LLL dd, y - LLL dd, y".
func NewDateRangePicker(opts ...Option) *DateRangePicker {
	cfg := newConfig(opts, PlaceholderRange, dateformat.PatternRangeDate)
	r := &DateRangePicker{
		value:    cfg.rangeValue(),
		onChange: cfg.onRange,
	}
	r.calendar = cfg.calendar(calendar.ModeRange, r.selection(), r.handleSelect)
	r.init("range", cfg, r.calendar, r.text)
	r.placeContent = r.calendar.SetOrigin
	r.openChanged = focusCalendar(r.calendar)
	return r
}

func (r *DateRangePicker) text() string {
	v := r.value.Get()
	return dateformat.FormatRange(v.From, v.To, r.format, "")
}

func (r *DateRangePicker) selection() calendar.Selection {
	v := r.value.Get()
	if !dateformat.IsValid(v.From) {
		return calendar.Selection{}
	}
	if !dateformat.IsValid(v.To) {
		return calendar.RangeSelection(v.From, time.Time{})
	}
	return calendar.RangeSelection(v.From, v.To)
}

// handleSelect narrows the calendar's proposal to a range. A bare date
// becomes an open range starting on it.
func (r *DateRangePicker) handleSelect(sel calendar.Selection) {
	next := sel.Range
	if next.From.IsZero() && !sel.Date.IsZero() {
		next = calendar.DateRange{From: sel.Date}
	}
	if next.IsEmpty() {
		return
	}

	r.value.Propose(next)
	r.calendar.SetSelected(r.selection())
	if r.onChange != nil {
		r.onChange(next)
	}
	r.emit(RangeMsg{ID: r.id, Range: next})

	if next.IsComplete() {
		r.log.Debug("range completed", "id", r.id, "range", dateformat.FormatRange(next.From, next.To, dateformat.PatternRangeDate, ""))
		r.Close()
	} else {
		r.log.Debug("range opened", "id", r.id)
	}
}

// Range returns the range shown on the trigger.
func (r *DateRangePicker) Range() calendar.DateRange {
	return r.value.Get()
}

// Sync mirrors a parent-owned range.
func (r *DateRangePicker) Sync(v calendar.DateRange) {
	r.value.Sync(v)
	r.calendar.SetSelected(r.selection())
}

func (r *DateRangePicker) Calendar() *calendar.Calendar {
	return r.calendar
}

// Update opens, dismisses and forwards input to the calendar. Every range
// step is reported as RangeMsg.
func (r *DateRangePicker) Update(msg tea.Msg) (*DateRangePicker, tea.Cmd) {
	return r, r.route(msg, func(msg tea.Msg) { r.calendar.Update(msg) })
}

func (r *DateRangePicker) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r *DateRangePicker) ViewWithContext(ctx components.RenderContext) string {
	return r.view(ctx)
}

func (r *DateRangePicker) WithAppliers(appliers ...components.StyleFunc) *DateRangePicker {
	r.AddAppliers(appliers...)
	return r
}

func (r *DateRangePicker) WithAttr(key, value string) *DateRangePicker {
	r.SetAttr(key, value)
	return r
}
