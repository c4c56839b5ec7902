package entity

import "time"

// Patient represents a person registered with a clinic
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	ClinicID  int64     `gorm:"not null;index" json:"clinic_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Clinic Clinic  `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Orders []Order `gorm:"foreignKey:PatientID" json:"orders,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
