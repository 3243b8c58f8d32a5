package repository

import (
	"context"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

func (r *Repository) CreateBloodRequest(req *domain.BloodRequest) error {
	query := `
		INSERT INTO blood_requests (patient_id, blood_group, units, notes, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{req.PatientID, req.BloodGroup, req.Units, req.Notes, req.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBloodRequestByID(id int64) (*domain.BloodRequest, error) {
	query := `
		SELECT patient_id, blood_group, units, notes, status, created_at, version
		FROM blood_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	req := &domain.BloodRequest{
		ID: id,
	}

	dst := []any{&req.PatientID, &req.BloodGroup, &req.Units, &req.Notes, &req.Status, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return req, nil
}

func (r *Repository) GetAllBloodRequests() ([]*domain.BloodRequest, error) {
	query := `
		SELECT id, patient_id, blood_group, units, notes, status, created_at, version
		FROM blood_requests
		ORDER BY created_at DESC
	`
	return r.queryBloodRequests(query)
}

func (r *Repository) GetBloodRequestsByPatient(patientID int64) ([]*domain.BloodRequest, error) {
	query := `
		SELECT id, patient_id, blood_group, units, notes, status, created_at, version
		FROM blood_requests
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	return r.queryBloodRequests(query, patientID)
}

func (r *Repository) queryBloodRequests(query string, args ...any) ([]*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.BloodRequest, 0)
	for rows.Next() {
		req := &domain.BloodRequest{}
		dst := []any{&req.ID, &req.PatientID, &req.BloodGroup, &req.Units, &req.Notes, &req.Status, &req.CreatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) UpdateBloodRequestStatus(req *domain.BloodRequest) error {
	query := `
		UPDATE blood_requests
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.Version); err != nil {
		return err
	}

	return nil
}

// AdjustInventory applies a delta to the units of a blood group, creating
// the row on first touch. The single-statement upsert keeps concurrent
// adjustments additive instead of last-writer-wins.
func (r *Repository) AdjustInventory(bloodGroup string, delta int32) (*domain.BloodInventory, error) {
	query := `
		INSERT INTO blood_inventory (blood_group, units)
		VALUES ($1, $2)
		ON CONFLICT (blood_group) DO UPDATE
		SET units = blood_inventory.units + EXCLUDED.units
		RETURNING blood_group, units
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	inv := &domain.BloodInventory{}
	if err := r.dbpool.QueryRowContext(ctx, query, bloodGroup, delta).Scan(&inv.BloodGroup, &inv.Units); err != nil {
		return nil, err
	}

	return inv, nil
}

func (r *Repository) GetInventory() ([]*domain.BloodInventory, error) {
	query := `
		SELECT blood_group, units FROM blood_inventory ORDER BY blood_group
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.BloodInventory, 0)
	for rows.Next() {
		inv := &domain.BloodInventory{}
		if err := rows.Scan(&inv.BloodGroup, &inv.Units); err != nil {
			return nil, err
		}
		items = append(items, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
