package calendar

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func jan(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.Local)
}

func fixedToday(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestRangeClicksInReverseOrderAreSwapped(t *testing.T) {
	t.Parallel()

	var got []Selection
	c := New(
		WithMode(ModeRange),
		WithDefaultSelected(Selection{}),
		WithToday(fixedToday(jan(10))),
		WithOnSelect(func(s Selection) { got = append(got, s) }),
	)

	c.Select(jan(20))
	c.Select(jan(15))

	require.Len(t, got, 2)
	assert.Equal(t, RangeSelection(jan(20), time.Time{}), got[0])
	assert.Equal(t, RangeSelection(jan(15), jan(20)), got[1])
	assert.Equal(t, got[1], c.Selected())
}

func TestCalendarOwnsSelectionByDefault(t *testing.T) {
	t.Parallel()

	c := New(WithMode(ModeRange), WithDefaultMonth(jan(1)))
	assert.False(t, c.Selected().Range.IsComplete())

	c.Select(jan(15))
	c.Select(jan(18))

	assert.Equal(t, RangeSelection(jan(15), jan(18)), c.Selected())
}

func TestOutsideDayClickShowsItsMonth(t *testing.T) {
	t.Parallel()

	c := New(WithDefaultMonth(jan(1)), WithToday(fixedToday(jan(10))))
	c.SetOrigin(0, 0)

	_, cmd := c.Update(click(0, 2)) // Sunday the 31st of December
	require.NotNil(t, cmd)

	dec31 := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, SingleSelection(dec31), c.Selected())
	assert.Equal(t, dec31, c.Cursor())
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local), c.Month())
}

func TestRangeThirdClickStartsOver(t *testing.T) {
	t.Parallel()

	complete := RangeSelection(jan(3), jan(9))
	for _, day := range []time.Time{jan(1), jan(5), jan(30)} {
		next, ok := Next(ModeRange, complete, day)
		require.True(t, ok)
		assert.Equal(t, RangeSelection(day, time.Time{}), next)
	}
}

func TestRangeSwapInvariantHoldsForAnyPair(t *testing.T) {
	t.Parallel()

	for a := 1; a <= 31; a += 3 {
		for b := 1; b <= 31; b += 4 {
			open, _ := Next(ModeRange, Selection{}, jan(a))
			closed, ok := Next(ModeRange, open, jan(b))
			require.True(t, ok)
			assert.False(t, closed.Range.From.After(closed.Range.To), "a=%d b=%d", a, b)
			assert.True(t, closed.Range.IsComplete())
		}
	}
}

func TestSingleModeReplacesSelection(t *testing.T) {
	t.Parallel()

	next, ok := Next(ModeSingle, SingleSelection(jan(4)), jan(9).Add(15*time.Hour))
	require.True(t, ok)
	assert.Equal(t, SingleSelection(jan(9)), next, "time of day is dropped")
}

func TestMultipleModeIsANoOp(t *testing.T) {
	t.Parallel()

	called := false
	c := New(WithMode(ModeMultiple), WithDefaultMonth(jan(1)), WithOnSelect(func(Selection) { called = true }))

	_, ok := c.Select(jan(5))
	assert.False(t, ok)
	assert.False(t, called)
}

func TestDisabledDaysNeverReachOnSelect(t *testing.T) {
	t.Parallel()

	weekend := func(d time.Time) bool {
		return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	}

	var calls int
	c := New(
		WithDefaultMonth(jan(1)),
		WithDisabled(weekend),
		WithOnSelect(func(Selection) { calls++ }),
	)

	for day := 1; day <= 31; day++ {
		c.Select(jan(day))
	}
	assert.Equal(t, 23, calls, "only the weekdays of January 2024 are selectable")

	c.SetOrigin(0, 0)
	_, cmd := c.Update(click(18, 4)) // Saturday the 20th
	assert.Nil(t, cmd)
	assert.Equal(t, 23, calls)
}

func TestControlledCalendarShowsOnlySyncedSelection(t *testing.T) {
	t.Parallel()

	var proposed Selection
	c := New(
		WithSelected(SingleSelection(jan(2))),
		WithOnSelect(func(s Selection) { proposed = s }),
	)

	c.Select(jan(8))
	assert.Equal(t, SingleSelection(jan(8)), proposed)
	assert.Equal(t, SingleSelection(jan(2)), c.Selected())

	c.SetSelected(proposed)
	assert.Equal(t, SingleSelection(jan(8)), c.Selected())
}

func TestInitialMonth(t *testing.T) {
	t.Parallel()

	today := fixedToday(time.Date(2025, time.June, 18, 9, 0, 0, 0, time.Local))

	assert.Equal(t, jan(1), New(WithDefaultMonth(jan(17)), WithToday(today)).Month())
	assert.Equal(t, jan(1), New(WithSelected(RangeSelection(jan(29), time.Time{})), WithToday(today)).Month())
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local), New(WithToday(today)).Month())
}

func TestMonthNavigationLeavesSelectionAlone(t *testing.T) {
	t.Parallel()

	calls := 0
	c := New(WithDefaultSelected(SingleSelection(jan(5))), WithOnSelect(func(Selection) { calls++ }))
	c.SetOrigin(10, 4)

	_, cmd := c.Update(click(10, 4))
	require.NotNil(t, cmd)
	assert.Equal(t, MonthMsg{Month: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local)}, cmd())

	c.Update(click(10+gridWidth-1, 4))
	c.NextMonth()
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), c.Month())

	assert.Zero(t, calls)
	assert.Equal(t, SingleSelection(jan(5)), c.Selected())
}

func TestClickSelectsDayUnderPointer(t *testing.T) {
	t.Parallel()

	c := New(WithMode(ModeRange), WithDefaultSelected(Selection{}), WithDefaultMonth(jan(1)))
	c.SetOrigin(0, 0)

	_, cmd := c.Update(click(18, 4))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectMsg{Selection: RangeSelection(jan(20), time.Time{})}, cmd())

	c.Update(click(3, 4))
	assert.Equal(t, RangeSelection(jan(15), jan(20)), c.Selected())

	_, cmd = c.Update(click(2, 4))
	assert.Nil(t, cmd, "the gap between cells is not a day")

	_, cmd = c.Update(click(4, 1))
	assert.Nil(t, cmd, "weekday header is inert")
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()

	c := New(WithToday(fixedToday(jan(10))))

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, jan(10), c.Cursor(), "keys need focus")

	c.Focus()
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, jan(18), c.Cursor())

	_, cmd = c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SelectMsg{Selection: SingleSelection(jan(18))}, cmd())

	for i := 0; i < 2; i++ {
		c.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	_, cmd = c.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, cmd, "leaving the month moves the displayed month")
	assert.Equal(t, time.Date(2023, time.December, 28, 0, 0, 0, 0, time.Local), c.Cursor())
	assert.Equal(t, time.December, c.Month().Month())

	c.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, time.January, c.Month().Month())
	assert.Equal(t, jan(28), c.Cursor())
}

func TestPrevMonthClampsCursorDay(t *testing.T) {
	t.Parallel()

	c := New(WithDefaultMonth(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)))
	c.cursor = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)

	c.PrevMonth()
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), c.Cursor())
}

func TestViewHidesOutsideDays(t *testing.T) {
	t.Parallel()

	c := New(WithDefaultMonth(jan(1)), WithShowOutsideDays(false), WithToday(fixedToday(jan(10))))
	lines := strings.Split(c.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "January 2024")
	assert.True(t, strings.HasPrefix(lines[0], "‹"))
	assert.True(t, strings.HasSuffix(lines[0], "›"))
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])
	assert.Equal(t, "    1  2  3  4  5  6", lines[2])
	assert.Equal(t, "28 29 30 31", lines[6])
}

func TestViewShowsOutsideDays(t *testing.T) {
	t.Parallel()

	c := New(WithDefaultMonth(jan(1)), WithToday(fixedToday(jan(10))))
	lines := strings.Split(c.View(), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "31  1  2  3  4  5  6", lines[2])
	assert.Equal(t, "28 29 30 31  1  2  3", lines[6])
}

func TestViewWithMondayWeekStart(t *testing.T) {
	t.Parallel()

	c := New(WithDefaultMonth(jan(1)), WithWeekStart(time.Monday))
	lines := strings.Split(c.View(), "\n")

	assert.Equal(t, "Mo Tu We Th Fr Sa Su", lines[1])
	assert.Equal(t, " 1  2  3  4  5  6  7", lines[2])
}
