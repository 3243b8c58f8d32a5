package utils

import (
	"testing"

	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

func TestGenerateRandomDoctorProfileValidWindow(t *testing.T) {
	for i := 0; i < 10000; i++ {
		profile := GenerateRandomDoctorProfile(1)

		window := schedule.ShiftWindow{
			DoctorID:  profile.UserID,
			StartHour: profile.ShiftStartHour,
			SlotCount: profile.SlotCount,
		}
		if err := window.Validate(); err != nil {
			t.Fatalf("generated profile start=%d count=%d: %v", profile.ShiftStartHour, profile.SlotCount, err)
		}
		if profile.SlotCount < 2 {
			t.Fatalf("expected at least 2 slots, got %d", profile.SlotCount)
		}
	}
}
