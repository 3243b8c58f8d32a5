package schedule

import "errors"

var (
	ErrInvalidShiftWindow = errors.New("invalid shift window")
	ErrSlotOutOfRange     = errors.New("slot index out of range")
	ErrHourNotInShift     = errors.New("hour outside the doctor's shift")
	ErrDateOutOfWindow    = errors.New("date outside the booking window")
	ErrSlotTaken          = errors.New("slot already booked")
)
