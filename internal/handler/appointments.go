package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

// CreateAppointment is the reservation endpoint. All slot validation and the
// atomic claim live in the booking service; this handler only assembles the
// request and translates the outcome.
func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		DoctorID  int64  `json:"doctorID" validate:"required"`
		Date      string `json:"date" validate:"required"`
		Hour      int    `json:"hour" validate:"gte=0,lte=23"`
		Details   string `json:"details"`
		PatientID int64  `json:"patientID"` // admin bookings on behalf of a patient
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		h.errorResponse(w, r, "invalid date, expected YYYY-MM-DD")
		return
	}

	patient := myInfo
	if myInfo.Role == domain.RoleAdmin {
		if req.PatientID == 0 {
			h.errorResponse(w, r, "patientID is required for admin bookings")
			return
		}
		patient, err = h.repository.GetUserByID(req.PatientID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "patient not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}
	if patient.Role != domain.RolePatient {
		h.errorResponse(w, r, "appointments can only be booked for patients")
		return
	}

	doctor, err := h.repository.GetUserByID(req.DoctorID)
	if err != nil || doctor.Role != domain.RoleDoctor {
		switch {
		case err == nil, errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "doctor not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	profile, err := h.repository.GetDoctorProfile(doctor.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "this doctor has not published a schedule yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	appt := &domain.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		DoctorName:  doctor.FullName,
		DoctorField: profile.Field,
		PatientName: patient.FullName,
		PatientCNIC: patient.CNIC,
		Dated:       date,
		Hour:        req.Hour,
		Details:     req.Details,
	}

	if _, err := h.booking.Reserve(appt); err != nil {
		switch {
		case errors.Is(err, schedule.ErrHourNotInShift):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, schedule.ErrDateOutOfWindow):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, schedule.ErrSlotTaken):
			h.errorResponse(w, r, "this slot has just been booked, please refresh the schedule and pick another")
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "this doctor has not published a schedule yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notify(&domain.Notification{
		FromID:   patient.ID,
		ToID:     doctor.ID,
		FromName: patient.FullName,
		Title:    "New appointment request",
		Message:  fmt.Sprintf("%s (CNIC %s) requested %s at %02d:00.", patient.FullName, patient.CNIC, appt.Dated.Format("2006-01-02"), appt.Hour),
	}, &domain.MailMessage{
		Type: "appointment_update",
		To:   doctor.Email,
		Data: domain.AppointmentUpdateMailData{
			PatientName: patient.FullName,
			DoctorName:  doctor.FullName,
			Date:        appt.Dated.Format("2006-01-02"),
			Hour:        appt.Hour,
			Status:      "requested",
		},
	})

	h.successResponse(w, r, "appointment requested", appt)
}

func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var (
		appts []*domain.Appointment
		err   error
	)

	switch myInfo.Role {
	case domain.RoleDoctor:
		appts, err = h.repository.GetAppointmentsByDoctor(myInfo.ID)
	case domain.RolePatient:
		appts, err = h.repository.GetAppointmentsByPatient(myInfo.ID)
	default:
		appts, err = h.repository.GetAllAppointments()
	}

	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appts)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	// lazily record that the visit time is behind us, like the read path of
	// the original system; a lost version race just means someone else
	// already did it
	if !appt.TimePassed && time.Now().UTC().After(appt.StartTime()) {
		if err := h.repository.MarkAppointmentTimePassed(appt); err != nil && !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to mark appointment time passed", "id", appt.ID, "error", err)
		}
	}

	h.successResponse(w, r, "appointment fetched", appt)
}

func (h *Handler) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if !appt.Status.CanTransition(domain.AppointmentScheduled) {
		h.errorResponse(w, r, fmt.Sprintf("a %s appointment cannot be approved", appt.Status))
		return
	}

	appt.Status = domain.AppointmentScheduled
	if err := h.repository.UpdateAppointmentStatus(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	profile, err := h.repository.GetDoctorProfile(appt.DoctorID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	subtotal, gst, total := domain.InvoiceAmounts(profile.Fee, h.config.Invoice.GSTPercent)
	invoice := &domain.Invoice{
		Number:        uuid.NewString(),
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Fee:           profile.Fee,
		Subtotal:      subtotal,
		GST:           gst,
		Total:         total,
	}
	if err := h.repository.CreateInvoice(invoice); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifyPatient(appt, "Appointment approved",
		fmt.Sprintf("Your appointment with %s on %s at %02d:00 has been approved.", appt.DoctorName, appt.Dated.Format("2006-01-02"), appt.Hour),
		"approved")

	h.successResponse(w, r, "appointment approved", map[string]any{
		"appointment": appt,
		"invoice":     invoice,
	})
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if !appt.Status.CanTransition(domain.AppointmentCancelled) {
		h.errorResponse(w, r, fmt.Sprintf("a %s appointment cannot be cancelled", appt.Status))
		return
	}

	appt.Status = domain.AppointmentCancelled
	if err := h.repository.UpdateAppointmentStatus(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// the slot is free again from this point on
	h.notifyPatient(appt, "Appointment cancelled",
		fmt.Sprintf("Your appointment with %s on %s at %02d:00 has been cancelled.", appt.DoctorName, appt.Dated.Format("2006-01-02"), appt.Hour),
		"cancelled")

	h.successResponse(w, r, "appointment cancelled", appt)
}

func (h *Handler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	var req struct {
		PostNotes string `json:"postNotes" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !appt.Status.CanTransition(domain.AppointmentCompleted) {
		h.errorResponse(w, r, fmt.Sprintf("a %s appointment cannot be completed", appt.Status))
		return
	}

	if time.Now().UTC().Before(appt.StartTime()) {
		h.errorResponse(w, r, "the appointment time has not passed yet")
		return
	}

	appt.Status = domain.AppointmentCompleted
	appt.PostNotes = req.PostNotes
	if err := h.repository.SetAppointmentPostNotes(appt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "appointment changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifyPatient(appt, "Appointment completed",
		fmt.Sprintf("%s added visit notes to your appointment of %s.", appt.DoctorName, appt.Dated.Format("2006-01-02")),
		"completed")

	h.successResponse(w, r, "appointment completed", appt)
}

func (h *Handler) notifyPatient(appt *domain.Appointment, title, message, status string) {
	var mail *domain.MailMessage

	patient, err := h.repository.GetUserByID(appt.PatientID)
	if err != nil {
		slog.Error("failed to load patient for notification", "id", appt.PatientID, "error", err)
	} else {
		mail = &domain.MailMessage{
			Type: "appointment_update",
			To:   patient.Email,
			Data: domain.AppointmentUpdateMailData{
				PatientName: appt.PatientName,
				DoctorName:  appt.DoctorName,
				Date:        appt.Dated.Format("2006-01-02"),
				Hour:        appt.Hour,
				Status:      status,
			},
		}
	}

	h.notify(&domain.Notification{
		FromID:   appt.DoctorID,
		ToID:     appt.PatientID,
		FromName: appt.DoctorName,
		Title:    title,
		Message:  message,
	}, mail)
}
