package schedule

import "fmt"

// ShiftWindow is a doctor's recurring daily availability: SlotCount
// sequential one-hour slots starting at StartHour. Shifts never wrap past
// midnight, which Validate enforces.
type ShiftWindow struct {
	DoctorID  int64
	StartHour int
	SlotCount int
}

func (w ShiftWindow) Validate() error {
	if w.StartHour < 0 || w.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d not in [0,23]", ErrInvalidShiftWindow, w.StartHour)
	}
	if w.SlotCount < 1 {
		return fmt.Errorf("%w: slot count %d must be at least 1", ErrInvalidShiftWindow, w.SlotCount)
	}
	if w.StartHour+w.SlotCount > 24 {
		return fmt.Errorf("%w: shift from %d with %d slots crosses midnight", ErrInvalidShiftWindow, w.StartHour, w.SlotCount)
	}
	return nil
}

// EndHour is the first hour after the shift.
func (w ShiftWindow) EndHour() int {
	return w.StartHour + w.SlotCount
}

// SlotToHour maps a 0-based slot index to its absolute hour of day.
func (w ShiftWindow) SlotToHour(index int) (int, error) {
	if index < 0 || index >= w.SlotCount {
		return 0, fmt.Errorf("%w: index %d not in [0,%d)", ErrSlotOutOfRange, index, w.SlotCount)
	}
	return w.StartHour + index, nil
}

// HourToSlot maps an absolute hour of day back to its slot index.
func (w ShiftWindow) HourToSlot(hour int) (int, error) {
	if hour < w.StartHour || hour >= w.EndHour() {
		return 0, fmt.Errorf("%w: hour %d not in [%d,%d)", ErrHourNotInShift, hour, w.StartHour, w.EndHour())
	}
	return hour - w.StartHour, nil
}
