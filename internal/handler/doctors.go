package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

func (h *Handler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")

	doctors, err := h.repository.GetAllDoctors(field)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "doctors fetched", doctors)
}

func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorUser := r.Context().Value(DoctorCtx).(*domain.User)

	doctor := &domain.Doctor{User: *doctorUser}

	profile, err := h.repository.GetDoctorProfile(doctorUser.ID)
	switch {
	case err == nil:
		doctor.Profile = *profile
	case errors.Is(err, sql.ErrNoRows):
		// a freshly created doctor account has no profile yet
	default:
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "doctor fetched", doctor)
}

// GetDoctorSchedule renders the day view used by the booking form: one entry
// per slot of the doctor's shift with its booked flag for the requested date.
func (h *Handler) GetDoctorSchedule(w http.ResponseWriter, r *http.Request) {
	doctorUser := r.Context().Value(DoctorCtx).(*domain.User)

	date, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.UTC)
	if err != nil {
		h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := h.booking.DayView(doctorUser.ID, date)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "this doctor has not published a schedule yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "schedule fetched", map[string]any{
		"doctorID": doctorUser.ID,
		"date":     schedule.Day(date).Format("2006-01-02"),
		"slots":    slots,
	})
}

// UpdateDoctorProfile is how a shift window comes into existence; the window
// is validated here so booking clients never see a malformed one.
func (h *Handler) UpdateDoctorProfile(w http.ResponseWriter, r *http.Request) {
	doctorUser := r.Context().Value(DoctorCtx).(*domain.User)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.Role != domain.RoleAdmin && myInfo.ID != doctorUser.ID {
		h.errorResponse(w, r, "permission denied")
		return
	}

	var req struct {
		Field          string `json:"field" validate:"required"`
		Fee            int64  `json:"fee" validate:"required,gte=0"`
		ShiftStartHour int    `json:"shiftStartHour" validate:"gte=0,lte=23"`
		SlotCount      int    `json:"slotCount" validate:"required,gte=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	window := schedule.ShiftWindow{
		DoctorID:  doctorUser.ID,
		StartHour: req.ShiftStartHour,
		SlotCount: req.SlotCount,
	}
	if err := window.Validate(); err != nil {
		h.badRequest(w, r, err)
		return
	}

	profile := &domain.DoctorProfile{
		UserID:         doctorUser.ID,
		Field:          req.Field,
		Fee:            req.Fee,
		ShiftStartHour: req.ShiftStartHour,
		SlotCount:      req.SlotCount,
	}

	if err := h.repository.UpsertDoctorProfile(profile); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "profile updated", profile)
}
