package repository

import (
	"context"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

func (r *Repository) GetDoctorProfile(userID int64) (*domain.DoctorProfile, error) {
	query := `
		SELECT field, fee, shift_start_hour, slot_count, created_at, version
		FROM doctor_profiles WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.DoctorProfile{
		UserID: userID,
	}

	dst := []any{&profile.Field, &profile.Fee, &profile.ShiftStartHour, &profile.SlotCount, &profile.CreatedAt, &profile.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return profile, nil
}

// GetShiftWindow is the booking.ProfileStore implementation: the scheduling
// core only needs the window, not the whole profile.
func (r *Repository) GetShiftWindow(doctorID int64) (schedule.ShiftWindow, error) {
	query := `
		SELECT shift_start_hour, slot_count
		FROM doctor_profiles WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	window := schedule.ShiftWindow{
		DoctorID: doctorID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, doctorID).Scan(&window.StartHour, &window.SlotCount); err != nil {
		return schedule.ShiftWindow{}, err
	}

	return window, nil
}

// UpsertDoctorProfile creates the profile on first edit and overwrites it on
// later ones. The shift window is validated by the handler before this call.
func (r *Repository) UpsertDoctorProfile(profile *domain.DoctorProfile) error {
	query := `
		INSERT INTO doctor_profiles (user_id, field, fee, shift_start_hour, slot_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET
			field = EXCLUDED.field,
			fee = EXCLUDED.fee,
			shift_start_hour = EXCLUDED.shift_start_hour,
			slot_count = EXCLUDED.slot_count,
			version = doctor_profiles.version + 1
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{profile.UserID, profile.Field, profile.Fee, profile.ShiftStartHour, profile.SlotCount}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&profile.CreatedAt, &profile.Version); err != nil {
		return err
	}

	return nil
}

// GetAllDoctors lists active doctor accounts joined with their profiles.
// field filters by specialty when non-empty.
func (r *Repository) GetAllDoctors(field string) ([]*domain.Doctor, error) {
	query := `
		SELECT
			u.id, u.email, u.full_name, u.created_at,
			dp.field, dp.fee, dp.shift_start_hour, dp.slot_count
		FROM users u
		JOIN doctor_profiles dp ON dp.user_id = u.id
		WHERE u.role = 'doctor' AND u.is_active
			AND ($1 = '' OR dp.field = $1)
		ORDER BY u.full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, field)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doctor := &domain.Doctor{}
		doctor.Role = domain.RoleDoctor
		doctor.IsActive = true
		dst := []any{
			&doctor.ID,
			&doctor.Email,
			&doctor.FullName,
			&doctor.CreatedAt,
			&doctor.Profile.Field,
			&doctor.Profile.Fee,
			&doctor.Profile.ShiftStartHour,
			&doctor.Profile.SlotCount,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		doctor.Profile.UserID = doctor.ID
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return doctors, nil
}
