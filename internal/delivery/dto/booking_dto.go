package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	PatientID int64     `json:"patient_id" validate:"required,min=1"`
	DoctorID  int64     `json:"doctor_id" validate:"required,min=1"`
}

// Response DTOs

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   int64     `json:"patient_id"`
	DoctorID    int64     `json:"doctor_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	SurgeryType string    `json:"surgery_type"`
	CreatedAt   time.Time `json:"created_at"`
}
