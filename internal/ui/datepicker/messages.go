package datepicker

import (
	"time"

	"github.com/alexisbeaulieu97/moonui/internal/ui/calendar"
)

// DateMsg reports a date picked in a DatePicker or DateTimePicker.
type DateMsg struct {
	ID   string
	Date time.Time
}

// RangeMsg reports each step of a DateRangePicker selection.
type RangeMsg struct {
	ID    string
	Range calendar.DateRange
}

// MonthMsg reports a month committed in a MonthPicker. Month is the first
// day of the month.
type MonthMsg struct {
	ID    string
	Month time.Time
}
