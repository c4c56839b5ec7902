package entity

import "time"

// Doctor represents a practitioner that bookings are made against
type Doctor struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Specialization string    `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Orders []Order `gorm:"foreignKey:DoctorID" json:"orders,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
