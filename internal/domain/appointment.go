package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// CanTransition reports whether an appointment may move from its current
// status to the given one. Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return to == AppointmentScheduled || to == AppointmentCancelled
	case AppointmentScheduled:
		return to == AppointmentCompleted || to == AppointmentCancelled
	default:
		return false
	}
}

// Occupies reports whether an appointment in this status still holds its
// (doctor, date, hour) slot. Only cancellation releases a slot.
func (s AppointmentStatus) Occupies() bool {
	return s != AppointmentCancelled
}

type Appointment struct {
	ID          int64             `json:"id"`
	DoctorID    int64             `json:"doctorID"`
	PatientID   int64             `json:"patientID"`
	DoctorName  string            `json:"doctorName"`
	DoctorField string            `json:"doctorField"`
	PatientName string            `json:"patientName"`
	PatientCNIC string            `json:"patientCnic"`
	Dated       time.Time         `json:"dated"` // calendar day, midnight UTC
	Hour        int               `json:"hour"`  // absolute hour of day
	Details     string            `json:"details"`
	PostNotes   string            `json:"postNotes"`
	Status      AppointmentStatus `json:"status"`
	TimePassed  bool              `json:"timePassed"`
	CreatedAt   time.Time         `json:"createdAt"`
	Version     int32             `json:"-"`
}

// StartTime is the instant the visit begins.
func (a *Appointment) StartTime() time.Time {
	day := a.Dated.UTC()
	return time.Date(day.Year(), day.Month(), day.Day(), a.Hour, 0, 0, 0, time.UTC)
}
