package calendar

import (
	"testing"
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/ui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeksWithOutsideDays(t *testing.T) {
	t.Parallel()

	weeks := BuildWeeks(jan(15), time.Sunday, true)

	require.Len(t, weeks, 5)
	for _, week := range weeks {
		assert.Len(t, week, 7)
	}
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local), weeks[0][0].Date)
	assert.False(t, weeks[0][0].InMonth)
	assert.True(t, weeks[0][1].InMonth)
	assert.Equal(t, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.Local), weeks[4][6].Date)
}

func TestBuildWeeksWithoutOutsideDays(t *testing.T) {
	t.Parallel()

	weeks := BuildWeeks(jan(15), time.Sunday, false)

	require.Len(t, weeks, 5)
	assert.True(t, weeks[0][0].Empty)
	assert.Equal(t, jan(1), weeks[0][1].Date)
	assert.Len(t, weeks[4], 4, "no trailing padding")
	assert.Equal(t, jan(31), weeks[4][3].Date)
}

func TestBuildWeeksRowCountVaries(t *testing.T) {
	t.Parallel()

	// February 2026 starts on a Sunday and fills exactly four rows.
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	assert.Len(t, BuildWeeks(feb, time.Sunday, false), 4)
	assert.Len(t, BuildWeeks(feb, time.Sunday, true), 4)

	// August 2026 starts on a Saturday and spills into a sixth row.
	aug := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.Local)
	assert.Len(t, BuildWeeks(aug, time.Sunday, true), 6)
}

func TestWeekdays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Weekday{
		time.Wednesday, time.Thursday, time.Friday, time.Saturday,
		time.Sunday, time.Monday, time.Tuesday,
	}, Weekdays(time.Wednesday))
}

func TestClassifyRange(t *testing.T) {
	t.Parallel()

	selected := RangeSelection(jan(10), jan(14))
	month := jan(1)
	today := jan(12)

	start := Classify(jan(10), month, today, ModeRange, selected, nil)
	assert.True(t, start.RangeStart)
	assert.True(t, start.Selected)
	assert.False(t, start.RangeMiddle)
	assert.Equal(t, components.DayRangeEdge, start.Variant())

	middle := Classify(jan(12), month, today, ModeRange, selected, nil)
	assert.True(t, middle.RangeMiddle)
	assert.True(t, middle.Today)
	assert.Equal(t, components.DayRangeMiddle, middle.Variant())

	end := Classify(jan(14), month, today, ModeRange, selected, nil)
	assert.True(t, end.RangeEnd)

	outside := Classify(jan(15), month, today, ModeRange, selected, nil)
	assert.False(t, outside.Selected)
	assert.Equal(t, components.DayDefault, outside.Variant())
}

func TestClassifyOpenRangeSelectsOnlyStart(t *testing.T) {
	t.Parallel()

	selected := RangeSelection(jan(10), time.Time{})

	assert.True(t, Classify(jan(10), jan(1), time.Time{}, ModeRange, selected, nil).Selected)
	next := Classify(jan(11), jan(1), time.Time{}, ModeRange, selected, nil)
	assert.False(t, next.Selected)
	assert.False(t, next.RangeMiddle)
}

func TestClassifyFlags(t *testing.T) {
	t.Parallel()

	disabled := func(d time.Time) bool { return d.Day() == 3 }
	dec := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local)

	outside := Classify(dec, jan(1), jan(2), ModeSingle, Selection{}, disabled)
	assert.True(t, outside.OutsideMonth)
	assert.Equal(t, components.DayOutside, outside.Variant())

	off := Classify(jan(3), jan(1), jan(2), ModeSingle, Selection{}, disabled)
	assert.True(t, off.Disabled)
	assert.Equal(t, components.DayDisabled, off.Variant())

	today := Classify(jan(2), jan(1), jan(2), ModeSingle, Selection{}, disabled)
	assert.Equal(t, components.DayToday, today.Variant())

	picked := Classify(jan(2), jan(1), jan(2), ModeSingle, SingleSelection(jan(2)), disabled)
	assert.Equal(t, components.DaySelected, picked.Variant())

	many := Classify(jan(7), jan(1), jan(2), ModeMultiple, Selection{Dates: []time.Time{jan(7)}}, nil)
	assert.True(t, many.Selected)
}

func TestDateRangeContains(t *testing.T) {
	t.Parallel()

	r := DateRange{From: jan(5), To: jan(7)}
	assert.True(t, r.Contains(jan(5).Add(23*time.Hour)))
	assert.True(t, r.Contains(jan(7)))
	assert.False(t, r.Contains(jan(8)))
	assert.False(t, DateRange{}.Contains(jan(1)))
}
