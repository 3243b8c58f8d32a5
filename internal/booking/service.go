package booking

import (
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

// ProfileStore supplies the shift window a doctor currently offers.
type ProfileStore interface {
	GetShiftWindow(doctorID int64) (schedule.ShiftWindow, error)
}

// AppointmentStore is the single source of truth for booked slots.
// ClaimSlot must be atomic: when two claims race for the same
// (doctor, date, hour), exactly one may succeed and the other must return
// schedule.ErrSlotTaken. The Postgres implementation relies on a partial
// unique index over non-cancelled appointments.
type AppointmentStore interface {
	GetBookedHours(doctorID int64, date time.Time) ([]int, error)
	ClaimSlot(appt *domain.Appointment) error
}

type Service struct {
	profiles     ProfileStore
	appointments AppointmentStore
	horizon      schedule.Horizon

	now func() time.Time
}

func NewService(profiles ProfileStore, appointments AppointmentStore, horizon schedule.Horizon) *Service {
	return &Service{
		profiles:     profiles,
		appointments: appointments,
		horizon:      horizon,
		now:          time.Now,
	}
}

// DayView renders the bookability of every slot of the doctor's shift on the
// given date. A date with no appointments yet yields all slots free.
func (s *Service) DayView(doctorID int64, date time.Time) ([]schedule.SlotStatus, error) {
	window, err := s.profiles.GetShiftWindow(doctorID)
	if err != nil {
		return nil, err
	}

	bookedHours, err := s.appointments.GetBookedHours(doctorID, schedule.Day(date))
	if err != nil {
		return nil, err
	}

	return schedule.BuildDayView(window, bookedHours), nil
}

// Reserve validates the requested slot and atomically claims it. All
// validation happens before any mutation; the only failure possible during
// the mutation itself is losing the race, reported as schedule.ErrSlotTaken.
// A day view rendered earlier may be stale by now, which is fine: the claim
// inside the store is what decides the winner, not the view.
func (s *Service) Reserve(appt *domain.Appointment) (*domain.Appointment, error) {
	window, err := s.profiles.GetShiftWindow(appt.DoctorID)
	if err != nil {
		return nil, err
	}

	if _, err := window.HourToSlot(appt.Hour); err != nil {
		return nil, err
	}

	if err := s.horizon.ValidateDate(s.now(), appt.Dated); err != nil {
		return nil, err
	}

	appt.Dated = schedule.Day(appt.Dated)
	appt.Status = domain.AppointmentPending

	if err := s.appointments.ClaimSlot(appt); err != nil {
		return nil, err
	}

	return appt, nil
}
