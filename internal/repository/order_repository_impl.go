package repository

import (
	"errors"
	"time"

	"patient-booking-api/internal/domain/entity"
	domainRepo "patient-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *entity.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByPatientAndID(db *gorm.DB, patientID int64, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := db.Where("patient_id = ? AND id = ?", patientID, id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindUpcomingByPatient(db *gorm.DB, patientID int64, after time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Where("patient_id = ? AND start_time > ?", patientID, after).
		Order("start_time ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByDoctor(db *gorm.DB, doctorID int64) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Where("doctor_id = ?", doctorID).
		Order("start_time ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindConflictCandidates(db *gorm.DB, doctorID int64, from time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Where("doctor_id = ? AND end_time > ?", doctorID, from).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes an order by primary key. Returns affected rows:
// 1 = deleted, 0 = already gone (prevents double-cancel race).
func (r *orderRepository) Delete(db *gorm.DB, order *entity.Order) (int64, error) {
	result := db.Where("id = ?", order.ID).Delete(&entity.Order{})
	return result.RowsAffected, result.Error
}
