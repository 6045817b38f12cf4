package datepicker

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// TimeFormat selects 24-hour or 12-hour labels.
type TimeFormat int

const (
	TimeFormat24 TimeFormat = iota
	TimeFormat12
)

// Pattern is the display pattern of the format.
func (f TimeFormat) Pattern() string {
	if f == TimeFormat12 {
		return dateformat.PatternTime12
	}
	return dateformat.PatternTime24
}

func (f TimeFormat) String() string {
	if f == TimeFormat12 {
		return "12h"
	}
	return "24h"
}

// TimeOption is one entry of the time list. Value is always HH:mm.
type TimeOption struct {
	Value string
	Label string
}

// TimeOptions lists the times of one day, interval minutes apart, starting
// at midnight. Intervals outside 1..1440 use DefaultTimeInterval.
func TimeOptions(interval int, format TimeFormat) []TimeOption {
	if interval <= 0 || interval > 24*60 {
		interval = DefaultTimeInterval
	}
	options := make([]TimeOption, 0, 24*60/interval+1)
	for minutes := 0; minutes < 24*60; minutes += interval {
		t := time.Date(2000, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
		options = append(options, TimeOption{
			Value: t.Format("15:04"),
			Label: dateformat.Format(t, format.Pattern(), ""),
		})
	}
	return options
}

// MergeTime sets the hour and minute of date from hhmm, keeping the
// calendar day and location. Seconds are dropped.
func MergeTime(date time.Time, hhmm string) (time.Time, error) {
	clock, err := dateformat.Parse(hhmm, dateformat.PatternTime24)
	if err != nil {
		return date, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}

const visibleTimes = 6

// timeSelect is the clock trigger and scrolling option list of a
// DateTimePicker.
type timeSelect struct {
	picker
	options []TimeOption
	format  TimeFormat
	value   string
	cursor  int
	offset  int
	listX   int
	listY   int
	list    calendar.KeyMap
	commit  func(string)
}

func newTimeSelect(cfg config, value string, commit func(string)) *timeSelect {
	t := &timeSelect{
		options: TimeOptions(cfg.timeInterval, cfg.timeFormat),
		format:  cfg.timeFormat,
		value:   value,
		list:    calendar.DefaultKeyMap(),
		commit:  commit,
	}
	cfg.placeholder = "--:--"
	t.init("time", cfg, renderFunc(t.renderList), t.text)
	t.glyph = func(theme components.Theme) string { return theme.Glyphs.Clock }
	t.placeContent = func(x, y int) { t.listX, t.listY = x, y }
	t.openChanged = t.showValue
	return t
}

func (t *timeSelect) text() string {
	clock, err := dateformat.Parse(t.value, dateformat.PatternTime24)
	if err != nil {
		return ""
	}
	return dateformat.Format(time.Date(2000, time.January, 1, clock.Hour(), clock.Minute(), 0, 0, time.UTC), t.format.Pattern(), "")
}

// showValue scrolls the list to the current value when opening.
func (t *timeSelect) showValue(open bool) {
	if !open {
		return
	}
	t.cursor = 0
	for i, option := range t.options {
		if option.Value == t.value {
			t.cursor = i
			break
		}
	}
	t.scroll()
}

func (t *timeSelect) scroll() {
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visibleTimes {
		t.offset = t.cursor - visibleTimes + 1
	}
}

func (t *timeSelect) handle(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.list.Up):
			t.cursor = max(0, t.cursor-1)
		case key.Matches(msg, t.list.Down):
			t.cursor = min(len(t.options)-1, t.cursor+1)
		case key.Matches(msg, t.list.Select):
			t.pick(t.cursor)
			return
		}
		t.scroll()
	case tea.MouseMsg:
		row := msg.Y - t.listY
		if row >= 0 && row < visibleTimes && msg.X >= t.listX {
			t.pick(t.offset + row)
		}
	}
}

func (t *timeSelect) pick(index int) {
	if index < 0 || index >= len(t.options) {
		return
	}
	t.value = t.options[index].Value
	t.log.Debug("time picked", "id", t.id, "time", t.value)
	if t.commit != nil {
		t.commit(t.value)
	}
	t.Close()
}

func (t *timeSelect) renderList(ctx components.RenderContext) string {
	theme := ctx.Normalized().Theme
	end := min(len(t.options), t.offset+visibleTimes)

	rows := make([]string, 0, visibleTimes)
	for i := t.offset; i < end; i++ {
		option := t.options[i]
		style := components.VariantStyle(theme, components.CalendarMonthCell)
		if option.Value == t.value {
			style = components.VariantStyle(theme, components.CalendarMonthCellSelected)
		}
		if i == t.cursor {
			style = components.ApplyVariant(style, theme, components.DayCursor)
		}
		rows = append(rows, style.Render(option.Label))
	}
	return strings.Join(rows, "\n")
}

// Cursor is the highlighted option index.
func (t *timeSelect) Cursor() int { return t.cursor }
