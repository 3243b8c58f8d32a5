package seed

import (
	"log/slog"

	"github.com/hms-platform/hospital-manager/backend/internal/config"
	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/repository"
	"github.com/hms-platform/hospital-manager/backend/internal/utils"
)

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// demo roster used for a fresh environment; each doctor gets a profile so the
// schedule endpoints have something to show
var demoDoctors = []struct {
	fullName       string
	field          string
	fee            int64
	shiftStartHour int
	slotCount      int
}{
	{"Sarah Malik", "Cardiology", 3000, 9, 4},
	{"Adeel Khan", "Dermatology", 2000, 10, 6},
	{"Mehwish Qureshi", "Pediatrics", 2500, 14, 5},
	{"Junaid Abbasi", "Orthopedics", 3500, 8, 3},
	{"Nida Hussain", "General Medicine", 1500, 16, 6},
}

// SeedBaseline fills a fresh database with enough data to exercise every
// flow: a stocked blood bank and a small doctor roster. Failures are logged
// and skipped so a partial seed still leaves a usable environment.
func SeedBaseline(r *repository.Repository, cfg *config.Config) {
	for _, group := range bloodGroups {
		if _, err := r.AdjustInventory(group, 10); err != nil {
			slog.Error("failed to stock blood group", "group", group, "error", err)
		}
	}

	for _, d := range demoDoctors {
		user, err := utils.GenerateRandomUser(domain.RoleDoctor, cfg.Seed.User.Password, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("failed to generate doctor account", "error", err)
			continue
		}
		user.FullName = d.fullName
		user.Email = utils.GenerateEmailFromFullName(d.fullName, cfg.Email.UserDomain)

		if err := r.CreateUser(user); err != nil {
			slog.Error("failed to insert doctor account", "email", user.Email, "error", err)
			continue
		}

		profile := &domain.DoctorProfile{
			UserID:         user.ID,
			Field:          d.field,
			Fee:            d.fee,
			ShiftStartHour: d.shiftStartHour,
			SlotCount:      d.slotCount,
		}
		if err := r.UpsertDoctorProfile(profile); err != nil {
			slog.Error("failed to insert doctor profile", "email", user.Email, "error", err)
		}
	}

	slog.Info("baseline seed finished")
}
