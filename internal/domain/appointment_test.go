package domain

import (
	"testing"
	"time"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentPending, AppointmentScheduled, true},
		{AppointmentPending, AppointmentCancelled, true},
		{AppointmentPending, AppointmentCompleted, false},
		{AppointmentScheduled, AppointmentCompleted, true},
		{AppointmentScheduled, AppointmentCancelled, true},
		{AppointmentScheduled, AppointmentPending, false},
		{AppointmentCompleted, AppointmentCancelled, false},
		{AppointmentCompleted, AppointmentScheduled, false},
		{AppointmentCancelled, AppointmentPending, false},
		{AppointmentCancelled, AppointmentScheduled, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Errorf("CanTransition(%s -> %s) = %v, expected %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestAppointmentOccupies(t *testing.T) {
	occupying := []AppointmentStatus{AppointmentPending, AppointmentScheduled, AppointmentCompleted}
	for _, s := range occupying {
		if !s.Occupies() {
			t.Errorf("expected %s to occupy its slot", s)
		}
	}
	if AppointmentCancelled.Occupies() {
		t.Error("expected a cancelled appointment to release its slot")
	}
}

func TestAppointmentStartTime(t *testing.T) {
	appt := Appointment{
		Dated: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Hour:  14,
	}

	expected := time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC)
	if got := appt.StartTime(); !got.Equal(expected) {
		t.Fatalf("StartTime() = %v, expected %v", got, expected)
	}
}
