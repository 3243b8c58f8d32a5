package repository

import (
	"context"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

func (r *Repository) CreateInvoice(inv *domain.Invoice) error {
	query := `
		INSERT INTO invoices (number, appointment_id, doctor_id, patient_id, fee, subtotal, gst, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{inv.Number, inv.AppointmentID, inv.DoctorID, inv.PatientID, inv.Fee, inv.Subtotal, inv.GST, inv.Total}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetInvoiceByAppointmentID(appointmentID int64) (*domain.Invoice, error) {
	query := `
		SELECT id, number, doctor_id, patient_id, fee, subtotal, gst, total, created_at
		FROM invoices WHERE appointment_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	inv := &domain.Invoice{
		AppointmentID: appointmentID,
	}

	dst := []any{&inv.ID, &inv.Number, &inv.DoctorID, &inv.PatientID, &inv.Fee, &inv.Subtotal, &inv.GST, &inv.Total, &inv.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, appointmentID).Scan(dst...); err != nil {
		return nil, err
	}

	return inv, nil
}
