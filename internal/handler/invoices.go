package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	appointmentID, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid appointment id")
		return
	}

	appt, err := h.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// patients and doctors can only see invoices for their own appointments
	switch myInfo.Role {
	case domain.RolePatient:
		if appt.PatientID != myInfo.ID {
			h.errorResponse(w, r, "appointment not found")
			return
		}
	case domain.RoleDoctor:
		if appt.DoctorID != myInfo.ID {
			h.errorResponse(w, r, "appointment not found")
			return
		}
	}

	invoice, err := h.repository.GetInvoiceByAppointmentID(appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no invoice for this appointment yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "invoice fetched", invoice)
}
