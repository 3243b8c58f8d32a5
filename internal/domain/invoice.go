package domain

import "time"

// Invoice is created when an appointment gets approved. Amounts are in the
// smallest currency unit. Total follows the fixed linear formula:
// subtotal is the doctor's fee, gst = subtotal * rate, total = subtotal + gst.
// InvoiceAmounts applies the billing formula to a consultation fee.
// Integer division truncates the GST toward zero.
func InvoiceAmounts(fee, gstPercent int64) (subtotal, gst, total int64) {
	subtotal = fee
	gst = subtotal * gstPercent / 100
	total = subtotal + gst
	return subtotal, gst, total
}

type Invoice struct {
	ID            int64     `json:"id"`
	Number        string    `json:"number"`
	AppointmentID int64     `json:"appointmentID"`
	DoctorID      int64     `json:"doctorID"`
	PatientID     int64     `json:"patientID"`
	Fee           int64     `json:"fee"`
	Subtotal      int64     `json:"subtotal"`
	GST           int64     `json:"gst"`
	Total         int64     `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
}
