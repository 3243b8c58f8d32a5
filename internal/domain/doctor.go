package domain

import "time"

// DoctorProfile carries the booking-relevant part of a doctor account.
// ShiftStartHour and SlotCount define the recurring daily shift window:
// the doctor offers SlotCount sequential one-hour slots starting at
// ShiftStartHour.
type DoctorProfile struct {
	UserID         int64     `json:"userID"`
	Field          string    `json:"field"`
	Fee            int64     `json:"fee"`
	ShiftStartHour int       `json:"shiftStartHour"`
	SlotCount      int       `json:"slotCount"`
	CreatedAt      time.Time `json:"createdAt"`
	Version        int32     `json:"-"`
}

// Doctor is the listing shape the booking clients consume: the account
// joined with its profile.
type Doctor struct {
	User
	Profile DoctorProfile `json:"profile"`
}
