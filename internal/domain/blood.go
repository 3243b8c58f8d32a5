package domain

import "time"

type BloodRequestStatus string

const (
	BloodRequestPending   BloodRequestStatus = "pending"
	BloodRequestFulfilled BloodRequestStatus = "fulfilled"
	BloodRequestRejected  BloodRequestStatus = "rejected"
)

type BloodRequest struct {
	ID         int64              `json:"id"`
	PatientID  int64              `json:"patientID"`
	BloodGroup string             `json:"bloodGroup"`
	Units      int32              `json:"units"`
	Notes      string             `json:"notes"`
	Status     BloodRequestStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	Version    int32              `json:"-"`
}

type BloodInventory struct {
	BloodGroup string `json:"bloodGroup"`
	Units      int32  `json:"units"`
}
