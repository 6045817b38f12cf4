package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/logger"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
)

// Placeholders shown on the trigger when nothing is selected.
const (
	PlaceholderDate     = "Pick a date"
	PlaceholderRange    = "Pick a date range"
	PlaceholderDateTime = "Pick a date and time"
	PlaceholderMonth    = "Pick a month"
)

// DefaultTimeInterval is the spacing of the time options in minutes.
const DefaultTimeInterval = 30

// Option configures any picker. Options that do not apply to a picker are
// ignored by it.
type Option func(*config)

type config struct {
	id          string
	placeholder string
	format      string
	disabled    func(time.Time) bool
	weekStart   time.Weekday
	today       func() time.Time
	log         *logger.Logger
	keys        KeyMap

	date        *time.Time
	defaultDate time.Time
	onDate      func(time.Time)

	dateRange    *calendar.DateRange
	defaultRange calendar.DateRange
	onRange      func(calendar.DateRange)

	timeInterval int
	timeFormat   TimeFormat
}

func newConfig(opts []Option, placeholder, format string) config {
	cfg := config{
		placeholder:  placeholder,
		format:       format,
		today:        time.Now,
		keys:         DefaultKeyMap(),
		timeInterval: DefaultTimeInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) dateValue() control.Value[time.Time] {
	return control.FromOptional(c.date, c.defaultDate)
}

func (c config) rangeValue() control.Value[calendar.DateRange] {
	return control.FromOptional(c.dateRange, c.defaultRange)
}

// calendar builds the parent-owned calendar a picker drives.
func (c config) calendar(mode calendar.Mode, selected calendar.Selection, onSelect func(calendar.Selection)) *calendar.Calendar {
	return calendar.New(
		calendar.WithMode(mode),
		calendar.WithSelected(selected),
		calendar.WithOnSelect(onSelect),
		calendar.WithDisabled(c.disabled),
		calendar.WithWeekStart(c.weekStart),
		calendar.WithToday(c.today),
		calendar.WithLogger(c.log),
	)
}

// WithID tags the messages a picker emits.
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

func WithPlaceholder(text string) Option {
	return func(c *config) { c.placeholder = text }
}

// WithFormat sets the display pattern, in date-fns tokens.
func WithFormat(pattern string) Option {
	return func(c *config) { c.format = pattern }
}

// WithDisabled marks days that cannot be picked.
func WithDisabled(fn func(time.Time) bool) Option {
	return func(c *config) { c.disabled = fn }
}

func WithWeekStart(day time.Weekday) Option {
	return func(c *config) { c.weekStart = day }
}

func WithToday(fn func() time.Time) Option {
	return func(c *config) { c.today = fn }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

func WithKeyMap(keys KeyMap) Option {
	return func(c *config) { c.keys = keys }
}

// WithDate makes the date, or month for MonthPicker, parent-owned.
func WithDate(date time.Time) Option {
	return func(c *config) { c.date = &date }
}

// WithDefaultDate seeds a picker that owns its value.
func WithDefaultDate(date time.Time) Option {
	return func(c *config) { c.defaultDate = date }
}

// WithOnDateChange receives every committed date or month.
func WithOnDateChange(fn func(time.Time)) Option {
	return func(c *config) { c.onDate = fn }
}

// WithDateRange makes the range parent-owned.
func WithDateRange(r calendar.DateRange) Option {
	return func(c *config) { c.dateRange = &r }
}

func WithDefaultDateRange(r calendar.DateRange) Option {
	return func(c *config) { c.defaultRange = r }
}

// WithOnDateRangeChange receives every range step, including open ranges.
func WithOnDateRangeChange(fn func(calendar.DateRange)) Option {
	return func(c *config) { c.onRange = fn }
}

// WithTimeInterval sets the minutes between time options.
func WithTimeInterval(minutes int) Option {
	return func(c *config) { c.timeInterval = minutes }
}

func WithTimeFormat(format TimeFormat) Option {
	return func(c *config) { c.timeFormat = format }
}
