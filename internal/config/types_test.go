package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"monday", time.Monday, true},
		{"Mon", time.Monday, true},
		{" SUNDAY ", time.Sunday, true},
		{"sat", time.Saturday, true},
		{"su", 0, false},
		{"funday", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeekday(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, Weekday(tt.want), got, tt.in)
		}
	}
}

func TestWeekdayUnmarshalRejectsUnknownNames(t *testing.T) {
	t.Parallel()

	var cal CalendarConfig
	err := yaml.Unmarshal([]byte("week_start: someday\n"), &cal)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown weekday "someday"`)
	assert.Equal(t, 1, extractLine(err))
}

func TestCalendarDisabledPredicate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CalendarConfig{}.Disabled())

	cal := CalendarConfig{DisabledWeekdays: []Weekday{Weekday(time.Saturday), Weekday(time.Sunday)}}
	disabled := cal.Disabled()
	require.NotNil(t, disabled)

	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.Local)
	assert.True(t, disabled(saturday))
	assert.True(t, disabled(saturday.AddDate(0, 0, 1)))
	assert.False(t, disabled(saturday.AddDate(0, 0, 2)))
}

func TestCalendarOutsideDaysDefaultsOn(t *testing.T) {
	t.Parallel()

	assert.True(t, CalendarConfig{}.OutsideDays())

	off := false
	assert.False(t, CalendarConfig{ShowOutsideDays: &off}.OutsideDays())
}

func TestPickerDate(t *testing.T) {
	t.Parallel()

	assert.True(t, PickerConfig{}.Date().IsZero())
	assert.Equal(t,
		time.Date(2024, time.January, 20, 0, 0, 0, 0, time.Local),
		PickerConfig{DefaultDate: "2024-01-20"}.Date(),
	)
	assert.False(t, PickerConfig{TimeFormat: "24h"}.Twelve())
}
