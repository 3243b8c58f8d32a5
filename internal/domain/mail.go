package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type AppointmentUpdateMailData struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	Hour        int    `json:"hour"`
	Status      string `json:"status"`
}
