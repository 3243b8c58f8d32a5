package schedule

import (
	"errors"
	"testing"
)

func TestBuildDayView(t *testing.T) {
	w := ShiftWindow{StartHour: 9, SlotCount: 3}

	slots := BuildDayView(w, []int{10})

	want := []SlotStatus{
		{Index: 0, Hour: 9, Booked: false},
		{Index: 1, Hour: 10, Booked: true},
		{Index: 2, Hour: 11, Booked: false},
	}

	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot %d: expected %+v, got %+v", i, want[i], slots[i])
		}
	}
}

func TestBuildDayViewEmptyBookedSet(t *testing.T) {
	w := ShiftWindow{StartHour: 14, SlotCount: 6}

	slots := BuildDayView(w, nil)

	if len(slots) != w.SlotCount {
		t.Fatalf("expected %d slots, got %d", w.SlotCount, len(slots))
	}
	for i, slot := range slots {
		if slot.Booked {
			t.Fatalf("slot %d unexpectedly booked", i)
		}
		if slot.Index != i || slot.Hour != w.StartHour+i {
			t.Fatalf("slot %d out of order: %+v", i, slot)
		}
	}
}

func TestBuildDayViewIgnoresHoursOutsideShift(t *testing.T) {
	w := ShiftWindow{StartHour: 9, SlotCount: 2}

	// stale rows for hours no longer in the shift must not mark anything
	slots := BuildDayView(w, []int{7, 15})

	for _, slot := range slots {
		if slot.Booked {
			t.Fatalf("slot %+v should be free", slot)
		}
	}
}

func TestIsBookable(t *testing.T) {
	w := ShiftWindow{StartHour: 9, SlotCount: 3}
	booked := []int{10}

	ok, err := IsBookable(w, booked, 9)
	if err != nil || !ok {
		t.Fatalf("hour 9: expected bookable, got ok=%v err=%v", ok, err)
	}

	ok, err = IsBookable(w, booked, 10)
	if err != nil || ok {
		t.Fatalf("hour 10: expected not bookable, got ok=%v err=%v", ok, err)
	}

	if _, err := IsBookable(w, booked, 12); !errors.Is(err, ErrHourNotInShift) {
		t.Fatalf("hour 12: expected ErrHourNotInShift, got %v", err)
	}
}
