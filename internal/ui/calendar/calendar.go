// Package calendar renders a navigable month grid and turns day clicks
// into selections for single, range and multiple modes.
//
// The selection is proposed to the consumer through OnSelect. A calendar
// built with WithSelected only shows what the consumer feeds back through
// SetSelected; any other calendar keeps its own selection, seeded by
// WithDefaultSelected.
package calendar

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
)

// Option configures a Calendar.
type Option func(*Calendar)

// Calendar is a month grid with a keyboard cursor.
type Calendar struct {
	components.BaseComponent

	mode            Mode
	selected        control.Value[Selection]
	onSelect        func(Selection)
	disabled        func(time.Time) bool
	showOutsideDays bool
	weekStart       time.Weekday
	today           func() time.Time

	month   time.Time
	cursor  time.Time
	origin  ui.Rect
	focused bool

	keys KeyMap
	log  *logger.Logger

	initialSelection *Selection
	defaultSelection *Selection
	defaultMonth     time.Time
}

func WithMode(mode Mode) Option {
	return func(c *Calendar) { c.mode = mode }
}

// WithSelected makes the selection parent-owned.
func WithSelected(selection Selection) Option {
	return func(c *Calendar) { c.initialSelection = &selection }
}

// WithDefaultSelected lets the calendar own its selection.
func WithDefaultSelected(selection Selection) Option {
	return func(c *Calendar) { c.defaultSelection = &selection }
}

// WithOnSelect registers the selection callback. It is never called for
// disabled days or month navigation.
func WithOnSelect(fn func(Selection)) Option {
	return func(c *Calendar) { c.onSelect = fn }
}

// WithDisabled sets the predicate for days that cannot be selected.
func WithDisabled(fn func(time.Time) bool) Option {
	return func(c *Calendar) { c.disabled = fn }
}

func WithShowOutsideDays(show bool) Option {
	return func(c *Calendar) { c.showOutsideDays = show }
}

// WithDefaultMonth sets the month shown first.
func WithDefaultMonth(month time.Time) Option {
	return func(c *Calendar) { c.defaultMonth = month }
}

func WithWeekStart(day time.Weekday) Option {
	return func(c *Calendar) { c.weekStart = day }
}

// WithToday replaces the clock used to highlight today.
func WithToday(fn func() time.Time) Option {
	return func(c *Calendar) { c.today = fn }
}

func WithKeyMap(keys KeyMap) Option {
	return func(c *Calendar) { c.keys = keys }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Calendar) { c.log = log.WithComponent("calendar") }
}

// New creates a calendar. The first month shown is the default month, else
// the month of the first selected day, else the current month.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		BaseComponent:   components.NewBaseComponent(),
		showOutsideDays: true,
		today:           time.Now,
		keys:            DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var fallback Selection
	if c.defaultSelection != nil {
		fallback = *c.defaultSelection
	}
	c.selected = control.FromOptional(c.initialSelection, fallback)
	c.initialSelection, c.defaultSelection = nil, nil

	month := c.defaultMonth
	if month.IsZero() {
		month = c.selected.Get().Anchor()
	}
	if month.IsZero() {
		month = c.today()
	}
	c.month = MonthStart(month)
	c.cursor = c.initialCursor()

	return c
}

func (c *Calendar) initialCursor() time.Time {
	if anchor := c.selected.Get().Anchor(); !anchor.IsZero() && SameMonth(anchor, c.month) {
		return DayOf(anchor)
	}
	if today := c.today(); SameMonth(today, c.month) {
		return DayOf(today)
	}
	return c.month
}

// Mode returns the selection mode.
func (c *Calendar) Mode() Mode {
	return c.mode
}

// Month returns the first day of the displayed month.
func (c *Calendar) Month() time.Time {
	return c.month
}

// Cursor returns the day the keyboard cursor is on.
func (c *Calendar) Cursor() time.Time {
	return c.cursor
}

// Selected returns the selection currently shown.
func (c *Calendar) Selected() Selection {
	return c.selected.Get()
}

// SetSelected mirrors a parent-owned selection. Calendars that own their
// selection ignore it.
func (c *Calendar) SetSelected(selection Selection) {
	c.selected.Sync(selection)
}

// Focus enables keyboard handling and shows the cursor.
func (c *Calendar) Focus() {
	c.focused = true
}

// Blur disables keyboard handling.
func (c *Calendar) Blur() {
	c.focused = false
}

// Focused reports keyboard focus.
func (c *Calendar) Focused() bool {
	return c.focused
}

// Today returns the calendar's notion of today.
func (c *Calendar) Today() time.Time {
	return DayOf(c.today())
}

// WeekStart returns the first weekday of each row.
func (c *Calendar) WeekStart() time.Weekday {
	return c.weekStart
}

// SetOrigin records the screen cell where the calendar's top-left corner
// was drawn, for mouse hit-testing.
func (c *Calendar) SetOrigin(x, y int) {
	c.origin = ui.Rect{X: x, Y: y, Width: gridWidth, Height: 2 + len(c.Weeks())}
}

// Bounds is the clickable area recorded by SetOrigin.
func (c *Calendar) Bounds() ui.Rect {
	return c.origin
}

// KeyMap returns the active bindings.
func (c *Calendar) KeyMap() KeyMap {
	return c.keys
}

// PrevMonth shows the previous month. The selection is untouched.
func (c *Calendar) PrevMonth() {
	c.moveMonth(-1)
}

// NextMonth shows the next month. The selection is untouched.
func (c *Calendar) NextMonth() {
	c.moveMonth(1)
}

func (c *Calendar) moveMonth(delta int) {
	c.month = c.month.AddDate(0, delta, 0)
	c.cursor = clampToMonth(c.cursor, c.month)
	c.log.Debug("month changed", "month", c.month.Format("2006-01"))
}

// Weeks lays out the displayed month.
func (c *Calendar) Weeks() [][]Day {
	return BuildWeeks(c.month, c.weekStart, c.showOutsideDays)
}

// Classify computes the state of one day in the displayed month.
func (c *Calendar) Classify(date time.Time) DayState {
	state := Classify(date, c.month, c.today(), c.mode, c.selected.Get(), c.disabled)
	state.Cursor = SameDay(date, c.cursor)
	return state
}

// IsDisabled applies the disabled predicate.
func (c *Calendar) IsDisabled(day time.Time) bool {
	return c.disabled != nil && c.disabled(day)
}

// Select handles a click on day. Disabled days and multiple mode are
// no-ops; otherwise the new selection is proposed and reported, and the
// calendar shows the picked day's month. It returns the proposed selection
// and whether one was made.
func (c *Calendar) Select(day time.Time) (Selection, bool) {
	if day.IsZero() || c.IsDisabled(day) {
		return Selection{}, false
	}

	next, ok := Next(c.mode, c.selected.Get(), day)
	if !ok {
		return Selection{}, false
	}

	c.cursor = DayOf(day)
	if !SameMonth(c.cursor, c.month) {
		c.month = MonthStart(c.cursor)
	}
	c.selected.Propose(next)
	c.log.Debug("day selected", "mode", c.mode.String(), "day", c.cursor.Format(time.DateOnly))

	if c.onSelect != nil {
		c.onSelect(next)
	}
	return next, true
}

// WithAppliers appends consumer style overrides.
func (c *Calendar) WithAppliers(appliers ...components.StyleFunc) *Calendar {
	c.AddAppliers(appliers...)
	return c
}

// WithAttr stores a pass-through attribute.
func (c *Calendar) WithAttr(key, value string) *Calendar {
	c.SetAttr(key, value)
	return c
}

// moveCursor shifts the cursor by days, following it into other months.
func (c *Calendar) moveCursor(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
	if !SameMonth(c.cursor, c.month) {
		c.month = MonthStart(c.cursor)
	}
}

// clampToMonth keeps the day of month of t inside month, shortening it
// when month is shorter.
func clampToMonth(t, month time.Time) time.Time {
	day := t.Day()
	last := MonthStart(month).AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, month.Location())
}
