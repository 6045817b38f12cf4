package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DateTimePicker picks a day in a calendar popover and a time of day from
// a list beside it. The time is kept as HH:mm whatever the display format.
type DateTimePicker struct {
	picker
	calendar *calendar.Calendar
	times    *timeSelect
	date     control.Value[time.Time]
	clock    string
	onChange func(time.Time)
}

// NewDateTimePicker creates a date and time picker. Without WithFormat the
// trigger shows "PPP HH:mm", or "PPP hh:mm a" with TimeFormat12.
func NewDateTimePicker(opts ...Option) *DateTimePicker {
	cfg := newConfig(opts, PlaceholderDateTime, "")
	if cfg.format == "" {
		cfg.format = dateformat.PatternLongDate + " " + cfg.timeFormat.Pattern()
	}

	d := &DateTimePicker{
		date:     cfg.dateValue(),
		clock:    "00:00",
		onChange: cfg.onDate,
	}
	if date := d.date.Get(); dateformat.IsValid(date) {
		d.clock = date.Format("15:04")
	}

	d.calendar = cfg.calendar(calendar.ModeSingle, d.selection(), d.handleSelect)
	d.init("datetime", cfg, d.calendar, d.text)
	d.placeContent = d.calendar.SetOrigin
	d.openChanged = focusCalendar(d.calendar)
	d.times = newTimeSelect(cfg, d.clock, func(hhmm string) { _ = d.SetTime(hhmm) })
	return d
}

func (d *DateTimePicker) text() string {
	return dateformat.Format(d.date.Get(), d.format, "")
}

func (d *DateTimePicker) selection() calendar.Selection {
	date := d.date.Get()
	if !dateformat.IsValid(date) {
		return calendar.Selection{}
	}
	return calendar.SingleSelection(date)
}

// handleSelect applies the current time of day to the picked day.
func (d *DateTimePicker) handleSelect(sel calendar.Selection) {
	day := sel.Date
	if day.IsZero() {
		day = sel.Range.From
	}
	if day.IsZero() {
		return
	}
	merged, err := MergeTime(day, d.clock)
	if err != nil {
		d.log.Error(err, "merging time", "id", d.id)
		return
	}
	d.commit(merged)
	d.Close()
}

// SetTime changes the time of day. A picked date keeps its day and takes
// the new hour and minute. Malformed times are rejected.
func (d *DateTimePicker) SetTime(hhmm string) error {
	if _, err := MergeTime(time.Time{}, hhmm); err != nil {
		d.log.Warn("rejecting time", "id", d.id, "time", hhmm)
		return err
	}
	d.clock = hhmm
	d.times.value = hhmm

	date := d.date.Get()
	if !dateformat.IsValid(date) {
		return nil
	}
	merged, _ := MergeTime(date, hhmm)
	d.commit(merged)
	return nil
}

func (d *DateTimePicker) commit(date time.Time) {
	d.date.Propose(date)
	d.calendar.SetSelected(d.selection())
	d.log.Debug("date time picked", "id", d.id, "value", date.Format(time.DateTime))
	if d.onChange != nil {
		d.onChange(date)
	}
	d.emit(DateMsg{ID: d.id, Date: date})
}

// Date returns the date and time shown on the trigger.
func (d *DateTimePicker) Date() time.Time {
	return d.date.Get()
}

// Time returns the time of day as HH:mm.
func (d *DateTimePicker) Time() string {
	return d.clock
}

// TimeOptions returns the options offered in the time list.
func (d *DateTimePicker) TimeOptions() []TimeOption {
	return d.times.options
}

// TimeOpen reports whether the time list is showing.
func (d *DateTimePicker) TimeOpen() bool {
	return d.times.IsOpen()
}

// OpenTime shows the time list.
func (d *DateTimePicker) OpenTime() {
	d.Close()
	d.times.Open()
}

// Sync mirrors a parent-owned date, including its time of day.
func (d *DateTimePicker) Sync(date time.Time) {
	d.date.Sync(date)
	if d.date.IsControlled() && dateformat.IsValid(date) {
		d.clock = date.Format("15:04")
		d.times.value = d.clock
	}
	d.calendar.SetSelected(d.selection())
}

func (d *DateTimePicker) Calendar() *calendar.Calendar {
	return d.calendar
}

// SetOrigin records where the picker was drawn. The time trigger sits one
// cell right of the date part.
func (d *DateTimePicker) SetOrigin(x, y int) {
	d.picker.SetOrigin(x, y)
	d.placeTimes()
}

func (d *DateTimePicker) placeTimes() {
	width := lipgloss.Width(d.popover.ViewWithContext(d.ctx.Normalized()))
	d.times.ctx = d.ctx
	d.times.SetOrigin(d.origin.X+width+1, d.origin.Y)
}

// Update routes keys to whichever popover is open, t to the time list and
// mouse presses to both parts.
func (d *DateTimePicker) Update(msg tea.Msg) (*DateTimePicker, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case d.times.IsOpen():
			cmds = append(cmds, d.times.route(msg, d.times.handle))
		case !d.IsOpen() && d.focused && key.Matches(msg, d.keys.OpenTime):
			d.OpenTime()
		default:
			cmds = append(cmds, d.route(msg, func(msg tea.Msg) { d.calendar.Update(msg) }))
		}
	case tea.MouseMsg:
		cmds = append(cmds,
			d.times.route(msg, d.times.handle),
			d.route(msg, func(msg tea.Msg) { d.calendar.Update(msg) }),
		)
	}
	d.placeTimes()
	cmds = append(cmds, d.flush())
	return d, tea.Batch(cmds...)
}

func (d *DateTimePicker) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the date part and the time part side by side.
func (d *DateTimePicker) ViewWithContext(ctx components.RenderContext) string {
	d.times.ctx = ctx
	return lipgloss.JoinHorizontal(lipgloss.Top, d.view(ctx), " ", d.times.view(ctx))
}

func (d *DateTimePicker) WithAppliers(appliers ...components.StyleFunc) *DateTimePicker {
	d.AddAppliers(appliers...)
	return d
}

func (d *DateTimePicker) WithAttr(key, value string) *DateTimePicker {
	d.SetAttr(key, value)
	return d
}
