package entity

import "time"

// SurgeryType categorizes the kind of procedure a clinic performs. Orders
// copy the value from the patient's clinic at booking time.
type SurgeryType string

const (
	SurgeryTypeGeneral    SurgeryType = "general"
	SurgeryTypeDental     SurgeryType = "dental"
	SurgeryTypeOrthopedic SurgeryType = "orthopedic"
)

// IsValid checks the surgery type against the known set
func (s SurgeryType) IsValid() bool {
	switch s {
	case SurgeryTypeGeneral, SurgeryTypeDental, SurgeryTypeOrthopedic:
		return true
	}
	return false
}

// Clinic represents a surgery that patients are registered with
type Clinic struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"type:varchar(100);not null" json:"name"`
	SurgeryType SurgeryType `gorm:"type:varchar(30);not null" json:"surgery_type"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:ClinicID" json:"patients,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}
