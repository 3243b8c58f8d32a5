package handler

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

type memBloodStore struct {
	stock     map[string]int32
	updateErr error
}

func (m *memBloodStore) AdjustInventory(bloodGroup string, delta int32) (*domain.BloodInventory, error) {
	m.stock[bloodGroup] += delta
	return &domain.BloodInventory{BloodGroup: bloodGroup, Units: m.stock[bloodGroup]}, nil
}

func (m *memBloodStore) UpdateBloodRequestStatus(req *domain.BloodRequest) error {
	return m.updateErr
}

func pendingRequest(units int32) *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:         1,
		PatientID:  42,
		BloodGroup: "O+",
		Units:      units,
		Status:     domain.BloodRequestPending,
	}
}

func TestFulfillBloodRequestDeductsStock(t *testing.T) {
	store := &memBloodStore{stock: map[string]int32{"O+": 10}}
	request := pendingRequest(3)

	if err := fulfillBloodRequest(store, request); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if store.stock["O+"] != 7 {
		t.Fatalf("expected 7 units left, got %d", store.stock["O+"])
	}
	if request.Status != domain.BloodRequestFulfilled {
		t.Fatalf("expected fulfilled, got %s", request.Status)
	}
}

func TestFulfillBloodRequestInsufficientStock(t *testing.T) {
	store := &memBloodStore{stock: map[string]int32{"O+": 2}}
	request := pendingRequest(3)

	if err := fulfillBloodRequest(store, request); !errors.Is(err, errInsufficientStock) {
		t.Fatalf("expected errInsufficientStock, got %v", err)
	}
	if store.stock["O+"] != 2 {
		t.Fatalf("expected stock untouched at 2 units, got %d", store.stock["O+"])
	}
	if request.Status != domain.BloodRequestPending {
		t.Fatalf("expected request still pending, got %s", request.Status)
	}
}

func TestFulfillBloodRequestRestoresStockOnUpdateFailure(t *testing.T) {
	store := &memBloodStore{
		stock:     map[string]int32{"O+": 10},
		updateErr: sql.ErrNoRows, // version conflict
	}
	request := pendingRequest(4)

	if err := fulfillBloodRequest(store, request); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected the update error, got %v", err)
	}
	if store.stock["O+"] != 10 {
		t.Fatalf("expected the deduction restored to 10 units, got %d", store.stock["O+"])
	}
	if request.Status != domain.BloodRequestPending {
		t.Fatalf("expected request still pending, got %s", request.Status)
	}
}
