package dto

import "time"

type CreatePatientRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	ClinicID int64  `json:"clinic_id" validate:"required,min=1"`
}

type PatientResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	ClinicID  int64           `json:"clinic_id"`
	Clinic    *ClinicResponse `json:"clinic,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
