package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

// ClaimSlot is the atomic claim of the booking flow. The partial unique
// index appointments_doctor_slot_key covers (doctor_id, dated, hours_time)
// over non-cancelled rows, so of two racing inserts for the same slot the
// database accepts exactly one; the loser gets schedule.ErrSlotTaken.
func (r *Repository) ClaimSlot(appt *domain.Appointment) error {
	query := `
		INSERT INTO appointments (
			doctor_id,
			patient_id,
			doctor_name,
			doctor_field,
			patient_name,
			patient_cnic,
			dated,
			hours_time,
			details,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, time_passed, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		appt.DoctorID,
		appt.PatientID,
		appt.DoctorName,
		appt.DoctorField,
		appt.PatientName,
		appt.PatientCNIC,
		appt.Dated,
		appt.Hour,
		appt.Details,
		appt.Status,
	}
	dst := []any{&appt.ID, &appt.TimePassed, &appt.CreatedAt, &appt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "appointments_doctor_slot_key" {
			return schedule.ErrSlotTaken
		}
		return err
	}

	return nil
}

// GetBookedHours returns the hours already taken for the doctor on the date.
// Cancelled appointments release their slot and are not counted.
func (r *Repository) GetBookedHours(doctorID int64, date time.Time) ([]int, error) {
	query := `
		SELECT hours_time FROM appointments
		WHERE doctor_id = $1 AND dated = $2 AND status <> 'cancelled'
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, doctorID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := make([]int, 0)
	for rows.Next() {
		var hour int
		if err := rows.Scan(&hour); err != nil {
			return nil, err
		}
		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}

const appointmentColumns = `
	id, doctor_id, patient_id, doctor_name, doctor_field, patient_name,
	patient_cnic, dated, hours_time, details, post_notes, status,
	time_passed, created_at, version
`

func scanAppointment(row interface{ Scan(...any) error }) (*domain.Appointment, error) {
	appt := &domain.Appointment{}
	dst := []any{
		&appt.ID,
		&appt.DoctorID,
		&appt.PatientID,
		&appt.DoctorName,
		&appt.DoctorField,
		&appt.PatientName,
		&appt.PatientCNIC,
		&appt.Dated,
		&appt.Hour,
		&appt.Details,
		&appt.PostNotes,
		&appt.Status,
		&appt.TimePassed,
		&appt.CreatedAt,
		&appt.Version,
	}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	return appt, nil
}

func (r *Repository) GetAppointmentByID(id int64) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return scanAppointment(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetAppointmentsByDoctor(doctorID int64) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + ` FROM appointments
		WHERE doctor_id = $1
		ORDER BY dated DESC, hours_time DESC
	`
	return r.queryAppointments(query, doctorID)
}

func (r *Repository) GetAppointmentsByPatient(patientID int64) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + ` FROM appointments
		WHERE patient_id = $1
		ORDER BY dated DESC, hours_time DESC
	`
	return r.queryAppointments(query, patientID)
}

func (r *Repository) GetAllAppointments() ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + ` FROM appointments
		ORDER BY dated DESC, hours_time DESC
	`
	return r.queryAppointments(query)
}

func (r *Repository) queryAppointments(query string, args ...any) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appts, nil
}

// UpdateAppointmentStatus persists a status transition. The version guard
// makes concurrent approve/cancel attempts lose with sql.ErrNoRows instead of
// silently overwriting each other.
func (r *Repository) UpdateAppointmentStatus(appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, appt.Status, appt.ID, appt.Version).Scan(&appt.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) SetAppointmentPostNotes(appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, post_notes = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{appt.Status, appt.PostNotes, appt.ID, appt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&appt.Version); err != nil {
		return err
	}

	return nil
}

// MarkAppointmentTimePassed flips the flag once the visit instant is behind
// us; read paths call it lazily.
func (r *Repository) MarkAppointmentTimePassed(appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET time_passed = TRUE, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, appt.ID, appt.Version).Scan(&appt.Version); err != nil {
		return err
	}

	appt.TimePassed = true
	return nil
}
