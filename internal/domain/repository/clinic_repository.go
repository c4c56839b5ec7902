package repository

import (
	"patient-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id int64) (*entity.Clinic, error)
	FindAll(db *gorm.DB) ([]entity.Clinic, error)
}
