// Package playground is an interactive Bubble Tea program that exercises
// the slider, the calendar and every date picker side by side.
package playground

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/moonui/internal/config"
	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/datepicker"
	"github.com/alexisbeaulieu97/moonui/internal/ui/slider"
)

// Section identifies one demo on screen. Sections are focused in order.
type Section int

const (
	SectionSlider Section = iota
	SectionCalendar
	SectionDate
	SectionRange
	SectionDateTime
	SectionMonth

	sectionCount
)

var sectionTitles = [sectionCount]string{
	SectionSlider:   "Slider",
	SectionCalendar: "Calendar",
	SectionDate:     "Date",
	SectionRange:    "Date range",
	SectionDateTime: "Date and time",
	SectionMonth:    "Month",
}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionTitles[s]
}

// frame records where the last View drew each section. It is shared by
// copies of the Model so mouse routing sees the latest layout.
type frame struct {
	areas [sectionCount]ui.Rect
}

// Model is the playground program.
type Model struct {
	slider   *slider.Slider
	calendar *calendar.Calendar
	date     *datepicker.DatePicker
	dateRng  *datepicker.DateRangePicker
	dateTime *datepicker.DateTimePicker
	month    *datepicker.MonthPicker

	focus  Section
	keys   KeyMap
	help   help.Model
	theme  components.Theme
	styles styles
	frame  *frame
	log    *logger.Logger
	opts   options

	status string
	width  int
	height int
}

// Option configures a Model.
type Option func(*options)

type options struct {
	log   *logger.Logger
	theme *components.Theme
	now   func() time.Time
	copy  func(string) error
}

// WithLogger sends component debug events to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithTheme overrides the theme named in the config.
func WithTheme(theme components.Theme) Option {
	return func(o *options) { o.theme = &theme }
}

// WithClock fixes "today" for the calendar and pickers.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithClipboard replaces the system clipboard used by the copy key.
func WithClipboard(write func(string) error) Option {
	return func(o *options) { o.copy = write }
}

// NewModel builds the playground from a validated config.
func NewModel(cfg *config.Config, opts ...Option) (Model, error) {
	o := options{now: time.Now, copy: clipboard.WriteAll}
	for _, opt := range opts {
		opt(&o)
	}
	return newModel(cfg, o)
}

func newModel(cfg *config.Config, o options) (Model, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	s := cfg.Slider
	if err := slider.Validate(s.Min, s.Max, s.Step); err != nil {
		return Model{}, fmt.Errorf("slider config: %w", err)
	}

	theme, ok := components.ThemeByName(cfg.Theme)
	if o.theme != nil {
		theme, ok = *o.theme, true
	}
	if !ok {
		o.log.Warn("unknown theme, using default", "theme", cfg.Theme)
	}

	m := Model{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme,
		styles: newStyles(theme),
		frame:  &frame{},
		log:    o.log.WithComponent("playground"),
		opts:   o,
		status: "tab to move between sections, click anything",
	}

	sliderOpts := []slider.Option{
		slider.WithID("slider"),
		slider.WithMin(s.Min),
		slider.WithMax(s.Max),
		slider.WithStep(s.Step),
		slider.WithDisabled(s.Disabled),
		slider.WithLogger(o.log),
	}
	if len(s.Values) > 0 {
		sliderOpts = append(sliderOpts, slider.WithDefaultValue(s.Values...))
	}
	if s.Width > 0 {
		sliderOpts = append(sliderOpts, slider.WithTrackWidth(s.Width))
	}
	m.slider = slider.New(sliderOpts...)

	cal := cfg.Calendar
	mode := calendar.ModeSingle
	if cal.Mode == calendar.ModeRange.String() {
		mode = calendar.ModeRange
	}
	m.calendar = calendar.New(
		calendar.WithMode(mode),
		calendar.WithDefaultSelected(calendar.Selection{}),
		calendar.WithShowOutsideDays(cal.OutsideDays()),
		calendar.WithWeekStart(time.Weekday(cal.WeekStart)),
		calendar.WithDisabled(cal.Disabled()),
		calendar.WithToday(o.now),
		calendar.WithLogger(o.log),
	)

	m.date, m.dateRng, m.dateTime, m.month = newPickers(cfg, o)

	m.applyFocus(SectionSlider)
	return m, nil
}

func newPickers(cfg *config.Config, o options) (*datepicker.DatePicker, *datepicker.DateRangePicker, *datepicker.DateTimePicker, *datepicker.MonthPicker) {
	p := cfg.Pickers
	common := []datepicker.Option{
		datepicker.WithDisabled(cfg.Calendar.Disabled()),
		datepicker.WithWeekStart(time.Weekday(cfg.Calendar.WeekStart)),
		datepicker.WithToday(o.now),
		datepicker.WithLogger(o.log),
	}
	with := func(extra ...datepicker.Option) []datepicker.Option {
		return append(append([]datepicker.Option(nil), common...), extra...)
	}

	date := p.Date()

	dateOpts := with(datepicker.WithID("date"), datepicker.WithDefaultDate(date))
	if p.DateFormat != "" {
		dateOpts = append(dateOpts, datepicker.WithFormat(p.DateFormat))
	}

	rangeOpts := with(datepicker.WithID("range"))
	if p.RangeFormat != "" {
		rangeOpts = append(rangeOpts, datepicker.WithFormat(p.RangeFormat))
	}

	timeFormat := datepicker.TimeFormat24
	if p.Twelve() {
		timeFormat = datepicker.TimeFormat12
	}
	dateTime := date
	if !date.IsZero() && p.DefaultTime != "" {
		if merged, err := datepicker.MergeTime(date, p.DefaultTime); err == nil {
			dateTime = merged
		}
	}
	timeOpts := with(
		datepicker.WithID("datetime"),
		datepicker.WithDefaultDate(dateTime),
		datepicker.WithTimeInterval(p.TimeInterval),
		datepicker.WithTimeFormat(timeFormat),
	)

	monthOpts := with(datepicker.WithID("month"), datepicker.WithDefaultDate(date))

	return datepicker.NewDatePicker(dateOpts...),
		datepicker.NewDateRangePicker(rangeOpts...),
		datepicker.NewDateTimePicker(timeOpts...),
		datepicker.NewMonthPicker(monthOpts...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the section receiving keys.
func (m Model) Focused() Section {
	return m.focus
}

// Status is the line describing the last event.
func (m Model) Status() string {
	return m.status
}

// Area is where section was last drawn.
func (m Model) Area(s Section) ui.Rect {
	if s < 0 || s >= sectionCount {
		return ui.Rect{}
	}
	return m.frame.areas[s]
}

// Slider exposes the slider demo.
func (m Model) Slider() *slider.Slider { return m.slider }

// Calendar exposes the calendar demo.
func (m Model) Calendar() *calendar.Calendar { return m.calendar }

// DatePicker exposes the single date demo.
func (m Model) DatePicker() *datepicker.DatePicker { return m.date }

// RangePicker exposes the range demo.
func (m Model) RangePicker() *datepicker.DateRangePicker { return m.dateRng }

// DateTimePicker exposes the date and time demo.
func (m Model) DateTimePicker() *datepicker.DateTimePicker { return m.dateTime }

// MonthPicker exposes the month demo.
func (m Model) MonthPicker() *datepicker.MonthPicker { return m.month }

// Theme is the active theme.
func (m Model) Theme() components.Theme {
	return m.theme
}

type focusable interface {
	Focus()
	Blur()
}

type closer interface {
	IsOpen() bool
	Close()
}

func (m Model) widget(s Section) focusable {
	switch s {
	case SectionSlider:
		return m.slider
	case SectionCalendar:
		return m.calendar
	case SectionDate:
		return m.date
	case SectionRange:
		return m.dateRng
	case SectionDateTime:
		return m.dateTime
	case SectionMonth:
		return m.month
	}
	return nil
}

// applyFocus moves keyboard focus, closing a popover left behind.
func (m *Model) applyFocus(next Section) {
	if prev := m.widget(m.focus); prev != nil {
		if c, ok := prev.(closer); ok && c.IsOpen() && next != m.focus {
			c.Close()
		}
		prev.Blur()
	}
	m.focus = next
	if w := m.widget(next); w != nil {
		w.Focus()
	}
}

func (m Model) sectionKeys() help.KeyMap {
	switch m.focus {
	case SectionSlider:
		return m.slider.KeyMap()
	case SectionCalendar:
		return m.calendar.KeyMap()
	case SectionDate:
		return m.date.KeyMap()
	case SectionRange:
		return m.dateRng.KeyMap()
	case SectionDateTime:
		return m.dateTime.KeyMap()
	case SectionMonth:
		return m.month.KeyMap()
	}
	return nil
}
