package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a booked appointment between one patient and one doctor
// over a half-open time interval [StartTime, EndTime). SurgeryType is copied
// from the patient's clinic when the order is created and never re-derived.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	StartTime   time.Time   `gorm:"not null;index:idx_orders_patient_start,priority:2;index:idx_orders_doctor_start,priority:2" json:"start_time"`
	EndTime     time.Time   `gorm:"not null" json:"end_time"`
	PatientID   int64       `gorm:"not null;index:idx_orders_patient_start,priority:1" json:"patient_id"`
	DoctorID    int64       `gorm:"not null;index:idx_orders_doctor_start,priority:1" json:"doctor_id"`
	SurgeryType SurgeryType `gorm:"type:varchar(30);not null" json:"surgery_type"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
