package schedule

// SlotStatus is the bookability of one slot on one date.
type SlotStatus struct {
	Index  int  `json:"index"`
	Hour   int  `json:"hour"`
	Booked bool `json:"booked"`
}

// BuildDayView produces one SlotStatus per slot of the window, ordered by
// index ascending. bookedHours holds the absolute hours already taken on the
// date; an empty set simply means every slot is free.
func BuildDayView(w ShiftWindow, bookedHours []int) []SlotStatus {
	booked := make(map[int]bool, len(bookedHours))
	for _, h := range bookedHours {
		booked[h] = true
	}

	slots := make([]SlotStatus, 0, w.SlotCount)
	for i := 0; i < w.SlotCount; i++ {
		hour := w.StartHour + i
		slots = append(slots, SlotStatus{
			Index:  i,
			Hour:   hour,
			Booked: booked[hour],
		})
	}

	return slots
}

// IsBookable reports whether the hour can still be reserved on the date the
// bookedHours set was computed for. Hours outside the window are an error,
// not merely unbookable.
func IsBookable(w ShiftWindow, bookedHours []int, hour int) (bool, error) {
	if _, err := w.HourToSlot(hour); err != nil {
		return false, err
	}
	for _, h := range bookedHours {
		if h == hour {
			return false, nil
		}
	}
	return true, nil
}
