package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestHorizonValidateDate(t *testing.T) {
	today := time.Date(2026, time.September, 1, 13, 45, 0, 0, time.UTC)
	h := DefaultHorizon

	cases := []struct {
		daysAhead int
		wantOK    bool
	}{
		{0, false}, // today itself is never bookable
		{1, true},
		{4, true},
		{7, true},
		{8, false},
		{-1, false},
	}

	for _, tc := range cases {
		date := today.AddDate(0, 0, tc.daysAhead)
		err := h.ValidateDate(today, date)
		if tc.wantOK && err != nil {
			t.Fatalf("day %+d: expected ok, got %v", tc.daysAhead, err)
		}
		if !tc.wantOK && !errors.Is(err, ErrDateOutOfWindow) {
			t.Fatalf("day %+d: expected ErrDateOutOfWindow, got %v", tc.daysAhead, err)
		}
	}
}

func TestHorizonIgnoresTimeOfDay(t *testing.T) {
	// late tonight vs early tomorrow is still exactly one day apart
	today := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)
	date := time.Date(2026, time.September, 2, 0, 1, 0, 0, time.UTC)

	if err := DefaultHorizon.ValidateDate(today, date); err != nil {
		t.Fatalf("expected tomorrow to be bookable, got %v", err)
	}
}

func TestDayTruncation(t *testing.T) {
	ts := time.Date(2026, time.September, 1, 18, 30, 12, 0, time.UTC)
	day := Day(ts)

	want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}
}
