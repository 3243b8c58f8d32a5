package schedule

import (
	"errors"
	"testing"
)

func TestShiftWindowValidate(t *testing.T) {
	cases := []struct {
		name      string
		window    ShiftWindow
		wantValid bool
	}{
		{"typical morning shift", ShiftWindow{StartHour: 9, SlotCount: 3}, true},
		{"full day", ShiftWindow{StartHour: 0, SlotCount: 24}, true},
		{"last hour only", ShiftWindow{StartHour: 23, SlotCount: 1}, true},
		{"negative start", ShiftWindow{StartHour: -1, SlotCount: 3}, false},
		{"start past 23", ShiftWindow{StartHour: 24, SlotCount: 1}, false},
		{"zero slots", ShiftWindow{StartHour: 9, SlotCount: 0}, false},
		{"crosses midnight", ShiftWindow{StartHour: 22, SlotCount: 3}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.window.Validate()
			if tc.wantValid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.wantValid {
				if !errors.Is(err, ErrInvalidShiftWindow) {
					t.Fatalf("expected ErrInvalidShiftWindow, got %v", err)
				}
			}
		})
	}
}

func TestSlotHourRoundTrip(t *testing.T) {
	windows := []ShiftWindow{
		{StartHour: 9, SlotCount: 3},
		{StartHour: 0, SlotCount: 24},
		{StartHour: 23, SlotCount: 1},
		{StartHour: 14, SlotCount: 6},
	}

	for _, w := range windows {
		for hour := w.StartHour; hour < w.EndHour(); hour++ {
			index, err := w.HourToSlot(hour)
			if err != nil {
				t.Fatalf("window %+v: HourToSlot(%d): %v", w, hour, err)
			}
			back, err := w.SlotToHour(index)
			if err != nil {
				t.Fatalf("window %+v: SlotToHour(%d): %v", w, index, err)
			}
			if back != hour {
				t.Fatalf("window %+v: round trip of hour %d gave %d", w, hour, back)
			}
		}
	}
}

func TestSlotToHourOutOfRange(t *testing.T) {
	w := ShiftWindow{StartHour: 9, SlotCount: 3}

	for _, index := range []int{-1, 3, 24} {
		if _, err := w.SlotToHour(index); !errors.Is(err, ErrSlotOutOfRange) {
			t.Fatalf("SlotToHour(%d): expected ErrSlotOutOfRange, got %v", index, err)
		}
	}
}

func TestHourToSlotOutsideShift(t *testing.T) {
	w := ShiftWindow{StartHour: 9, SlotCount: 3}

	for _, hour := range []int{0, 8, 12, 23} {
		if _, err := w.HourToSlot(hour); !errors.Is(err, ErrHourNotInShift) {
			t.Fatalf("HourToSlot(%d): expected ErrHourNotInShift, got %v", hour, err)
		}
	}
}
