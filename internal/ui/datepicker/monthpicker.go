package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/dateformat"
	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/alexisbeaulieu97/moonui/internal/ui/control"
	tea "github.com/charmbracelet/bubbletea"
)

// MonthPicker picks a month from a year grid. The browsed year moves
// independently of the committed month; picking a month closes it.
type MonthPicker struct {
	picker
	grid     *monthGrid
	month    control.Value[time.Time]
	onChange func(time.Time)
}

// NewMonthPicker creates a picker showing "Pick a month" until a month is
// chosen, then "MMMM yyyy". Values are normalized to the first of the month.
func NewMonthPicker(opts ...Option) *MonthPicker {
	cfg := newConfig(opts, PlaceholderMonth, dateformat.PatternMonthYear)
	if cfg.date != nil {
		month := monthOf(*cfg.date)
		cfg.date = &month
	}
	cfg.defaultDate = monthOf(cfg.defaultDate)

	m := &MonthPicker{
		month:    cfg.dateValue(),
		onChange: cfg.onDate,
	}
	view := m.month.Get()
	if !dateformat.IsValid(view) {
		view = cfg.today()
	}
	m.grid = &monthGrid{
		year:     view.Year(),
		selected: m.month.Get(),
		cursor:   view.Month(),
		today:    cfg.today,
		keys:     calendar.DefaultKeyMap(),
		onPick:   m.commit,
	}
	m.init("month", cfg, renderFunc(m.grid.view), m.text)
	m.placeContent = func(x, y int) { m.grid.x, m.grid.y = x, y }
	m.openChanged = func(open bool) { m.grid.focused = open }
	return m
}

func monthOf(t time.Time) time.Time {
	if !dateformat.IsValid(t) {
		return time.Time{}
	}
	return calendar.MonthStart(t)
}

func (m *MonthPicker) text() string {
	return dateformat.Format(m.month.Get(), m.format, "")
}

func (m *MonthPicker) commit(month time.Time) {
	m.month.Propose(month)
	m.grid.selected = m.month.Get()
	m.log.Debug("month picked", "id", m.id, "month", month.Format("2006-01"))
	if m.onChange != nil {
		m.onChange(month)
	}
	m.emit(MonthMsg{ID: m.id, Month: month})
	m.Close()
}

// SelectMonth commits a month of the browsed year.
func (m *MonthPicker) SelectMonth(month time.Month) {
	m.grid.pick(month)
}

// PrevYear browses the previous year without changing the value.
func (m *MonthPicker) PrevYear() { m.grid.prevYear() }

// NextYear browses the next year without changing the value.
func (m *MonthPicker) NextYear() { m.grid.nextYear() }

// ViewYear is the year shown in the grid.
func (m *MonthPicker) ViewYear() int { return m.grid.year }

// Month returns the committed month, or the zero time.
func (m *MonthPicker) Month() time.Time {
	return m.month.Get()
}

// Sync mirrors a parent-owned month and browses to its year.
func (m *MonthPicker) Sync(month time.Time) {
	month = monthOf(month)
	m.month.Sync(month)
	m.grid.selected = m.month.Get()
	if m.month.IsControlled() && dateformat.IsValid(month) {
		m.grid.year = month.Year()
		m.grid.cursor = month.Month()
	}
}

// Update opens, dismisses and forwards input to the month grid. Picks are
// reported as MonthMsg.
func (m *MonthPicker) Update(msg tea.Msg) (*MonthPicker, tea.Cmd) {
	return m, m.route(msg, m.grid.update)
}

func (m *MonthPicker) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m *MonthPicker) ViewWithContext(ctx components.RenderContext) string {
	return m.view(ctx)
}

func (m *MonthPicker) WithAppliers(appliers ...components.StyleFunc) *MonthPicker {
	m.AddAppliers(appliers...)
	return m
}

func (m *MonthPicker) WithAttr(key, value string) *MonthPicker {
	m.SetAttr(key, value)
	return m
}
