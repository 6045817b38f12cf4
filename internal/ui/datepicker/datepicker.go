package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
)

// DatePicker picks a single day. Picking closes the popover.
type DatePicker struct {
	picker
	calendar *calendar.Calendar
	date     control.Value[time.Time]
	onChange func(time.Time)
}

// NewDatePicker creates a picker showing "Pick a date" until a day is
// chosen, then the day in PPP format.
func NewDatePicker(opts ...Option) *DatePicker {
	cfg := newConfig(opts, PlaceholderDate, dateformat.PatternLongDate)
	d := &DatePicker{
		date:     cfg.dateValue(),
		onChange: cfg.onDate,
	}
	d.calendar = cfg.calendar(calendar.ModeSingle, d.selection(), d.handleSelect)
	d.init("date", cfg, d.calendar, d.text)
	d.placeContent = d.calendar.SetOrigin
	d.openChanged = focusCalendar(d.calendar)
	return d
}

func (d *DatePicker) text() string {
	return dateformat.Format(d.date.Get(), d.format, "")
}

func (d *DatePicker) selection() calendar.Selection {
	date := d.date.Get()
	if !dateformat.IsValid(date) {
		return calendar.Selection{}
	}
	return calendar.SingleSelection(date)
}

// handleSelect narrows whatever the calendar proposes to one day.
func (d *DatePicker) handleSelect(sel calendar.Selection) {
	day := sel.Date
	if day.IsZero() {
		day = sel.Range.From
	}
	if day.IsZero() {
		return
	}

	d.date.Propose(day)
	d.calendar.SetSelected(d.selection())
	d.log.Debug("date picked", "id", d.id, "date", day.Format(time.DateOnly))
	if d.onChange != nil {
		d.onChange(day)
	}
	d.emit(DateMsg{ID: d.id, Date: day})
	d.Close()
}

// Date returns the date shown on the trigger.
func (d *DatePicker) Date() time.Time {
	return d.date.Get()
}

// Sync mirrors a parent-owned date.
func (d *DatePicker) Sync(date time.Time) {
	d.date.Sync(date)
	d.calendar.SetSelected(d.selection())
}

// Calendar exposes the calendar shown in the popover.
func (d *DatePicker) Calendar() *calendar.Calendar {
	return d.calendar
}

// Update opens, dismisses and forwards input to the calendar. Picks are
// reported as DateMsg.
func (d *DatePicker) Update(msg tea.Msg) (*DatePicker, tea.Cmd) {
	return d, d.route(msg, func(msg tea.Msg) { d.calendar.Update(msg) })
}

func (d *DatePicker) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *DatePicker) ViewWithContext(ctx components.RenderContext) string {
	return d.view(ctx)
}

func (d *DatePicker) WithAppliers(appliers ...components.StyleFunc) *DatePicker {
	d.AddAppliers(appliers...)
	return d
}

func (d *DatePicker) WithAttr(key, value string) *DatePicker {
	d.SetAttr(key, value)
	return d
}

func focusCalendar(c *calendar.Calendar) func(bool) {
	return func(open bool) {
		if open {
			c.Focus()
		} else {
			c.Blur()
		}
	}
}
