package schedule

import (
	"fmt"
	"time"
)

// Horizon is the permitted range of calendar days for new appointment
// requests, counted from "today": the earliest bookable day is
// today+MinLeadDays and the latest today+MaxAheadDays, both inclusive.
type Horizon struct {
	MinLeadDays  int
	MaxAheadDays int
}

// DefaultHorizon books from tomorrow through a week ahead.
var DefaultHorizon = Horizon{MinLeadDays: 1, MaxAheadDays: 7}

// Day truncates an instant to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateDate checks that date falls inside the horizon relative to today.
// Both arguments are truncated to UTC calendar days first, so passing
// time.Now() is fine.
func (h Horizon) ValidateDate(today, date time.Time) error {
	days := int(Day(date).Sub(Day(today)).Hours() / 24)
	if days < h.MinLeadDays || days > h.MaxAheadDays {
		return fmt.Errorf("%w: %s is %d days ahead, allowed range is [%d,%d]",
			ErrDateOutOfWindow, Day(date).Format("2006-01-02"), days, h.MinLeadDays, h.MaxAheadDays)
	}
	return nil
}
