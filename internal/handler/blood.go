package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

var errInsufficientStock = errors.New("insufficient stock")

// bloodStore is the slice of the repository the fulfilment flow touches.
type bloodStore interface {
	AdjustInventory(bloodGroup string, delta int32) (*domain.BloodInventory, error)
	UpdateBloodRequestStatus(req *domain.BloodRequest) error
}

// fulfillBloodRequest deducts the requested units and marks the request
// fulfilled. Either both changes land or the deduction is put back, so an
// error never leaves the bank short and a retry never deducts twice.
func fulfillBloodRequest(store bloodStore, request *domain.BloodRequest) error {
	inv, err := store.AdjustInventory(request.BloodGroup, -request.Units)
	if err != nil {
		return err
	}
	if inv.Units < 0 {
		if _, err := store.AdjustInventory(request.BloodGroup, request.Units); err != nil {
			return err
		}
		return errInsufficientStock
	}

	request.Status = domain.BloodRequestFulfilled
	if err := store.UpdateBloodRequestStatus(request); err != nil {
		request.Status = domain.BloodRequestPending
		if _, refundErr := store.AdjustInventory(request.BloodGroup, request.Units); refundErr != nil {
			slog.Error("failed to restore blood stock", "group", request.BloodGroup, "units", request.Units, "error", refundErr)
		}
		return err
	}

	return nil
}

var bloodGroups = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

func (h *Handler) CreateBloodRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		BloodGroup string `json:"bloodGroup" validate:"required"`
		Units      int32  `json:"units" validate:"required,gt=0"`
		Notes      string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !bloodGroups[req.BloodGroup] {
		h.errorResponse(w, r, "unknown blood group")
		return
	}

	request := &domain.BloodRequest{
		PatientID:  myInfo.ID,
		BloodGroup: req.BloodGroup,
		Units:      req.Units,
		Notes:      req.Notes,
		Status:     domain.BloodRequestPending,
	}
	if err := h.repository.CreateBloodRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "blood request submitted", request)
}

func (h *Handler) GetBloodRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var (
		requests []*domain.BloodRequest
		err      error
	)

	if myInfo.Role == domain.RoleAdmin {
		requests, err = h.repository.GetAllBloodRequests()
	} else {
		requests, err = h.repository.GetBloodRequestsByPatient(myInfo.ID)
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "blood requests fetched", requests)
}

func (h *Handler) UpdateBloodRequest(w http.ResponseWriter, r *http.Request) {
	request := r.Context().Value(BloodRequestCtx).(*domain.BloodRequest)

	var req struct {
		Status domain.BloodRequestStatus `json:"status" validate:"required,oneof=fulfilled rejected"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if request.Status != domain.BloodRequestPending {
		h.errorResponse(w, r, fmt.Sprintf("a %s blood request cannot be updated", request.Status))
		return
	}

	if req.Status == domain.BloodRequestFulfilled {
		if err := fulfillBloodRequest(h.repository, request); err != nil {
			switch {
			case errors.Is(err, errInsufficientStock):
				h.errorResponse(w, r, fmt.Sprintf("not enough %s in stock", request.BloodGroup))
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "blood request changed underneath you, please retry")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	} else {
		request.Status = req.Status
		if err := h.repository.UpdateBloodRequestStatus(request); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "blood request changed underneath you, please retry")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	h.notify(&domain.Notification{
		ToID:     request.PatientID,
		FromName: "Blood bank",
		Title:    fmt.Sprintf("Blood request %s", request.Status),
		Message:  fmt.Sprintf("Your request for %d unit(s) of %s has been %s.", request.Units, request.BloodGroup, request.Status),
	}, nil)

	h.successResponse(w, r, "blood request updated", request)
}

func (h *Handler) GetBloodInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.repository.GetInventory()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "blood inventory fetched", inventory)
}

func (h *Handler) AdjustBloodInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BloodGroup string `json:"bloodGroup" validate:"required"`
		Delta      int32  `json:"delta" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !bloodGroups[req.BloodGroup] {
		h.errorResponse(w, r, "unknown blood group")
		return
	}

	inv, err := h.repository.AdjustInventory(req.BloodGroup, req.Delta)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if inv.Units < 0 {
		if _, err := h.repository.AdjustInventory(req.BloodGroup, -req.Delta); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.errorResponse(w, r, fmt.Sprintf("not enough %s in stock", req.BloodGroup))
		return
	}

	h.successResponse(w, r, "blood inventory updated", inv)
}
