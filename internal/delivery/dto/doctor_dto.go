package dto

import "time"

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Specialization string `json:"specialization" validate:"max=100"`
}

type DoctorResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
