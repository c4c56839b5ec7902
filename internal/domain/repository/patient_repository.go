package repository

import (
	"patient-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
}
