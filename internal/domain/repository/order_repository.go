package repository

import (
	"time"

	"patient-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *entity.Order) error
	FindByPatientAndID(db *gorm.DB, patientID int64, id uuid.UUID) (*entity.Order, error)
	// FindUpcomingByPatient returns the patient's orders starting strictly
	// after the given time, filtered at the storage layer.
	FindUpcomingByPatient(db *gorm.DB, patientID int64, after time.Time) ([]entity.Order, error)
	FindByDoctor(db *gorm.DB, doctorID int64) ([]entity.Order, error)
	// FindConflictCandidates returns the doctor's orders that end after the
	// given instant, the only ones a new booking starting there can overlap.
	FindConflictCandidates(db *gorm.DB, doctorID int64, from time.Time) ([]entity.Order, error)
	Delete(db *gorm.DB, order *entity.Order) (int64, error)
}
