package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"patient-booking-api/internal/converter"
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/domain/entity"
	"patient-booking-api/internal/domain/repository"
	"patient-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNoUpcomingBooking = errors.New("no upcoming booking")
)

// Postgres error codes that signal the orders exclusion/unique constraints
// rejected a conflicting insert.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetNextAppointment(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error)
	GetLatestAppointment(ctx context.Context, doctorID int64) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, patientID int64, bookingID uuid.UUID) error
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	orderRepo    repository.OrderRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	bookingCache *service.BookingCache
	auditService service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	bookingCache *service.BookingCache,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		orderRepo:    orderRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		bookingCache: bookingCache,
		auditService: auditService,
	}
}

// CreateBooking books an appointment for a patient with a doctor.
//
// Flow:
// 1. Load patient (with clinic) and doctor
// 2. In a serializable transaction: load the doctor's potentially conflicting
//    orders, run the booking rules, insert the order, write the audit row
// 3. Map an exclusion-constraint violation to ErrDoctorBusy, so concurrent
//    creates for the same doctor and interval cannot both commit
// 4. Invalidate the doctor's latest-appointment cache entry
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// SurgeryType freezes at creation from the patient's clinic. Later clinic
	// changes never rewrite existing orders.
	order := &entity.Order{
		ID:          uuid.New(),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		SurgeryType: patient.Clinic.SurgeryType,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := u.orderRepo.FindConflictCandidates(tx, req.DoctorID, req.StartTime)
		if err != nil {
			return err
		}

		if err := service.ValidateNewBooking(order, existing, time.Now()); err != nil {
			return err
		}

		if err := u.orderRepo.Create(tx, order); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionBookingCreate, "order", order.ID.String(), order)
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		if isConflictViolation(err) {
			// The DB exclusion constraint caught a race the in-transaction
			// check could not see
			return nil, service.ErrDoctorBusy
		}
		if errors.Is(err, service.ErrPastDate) || errors.Is(err, service.ErrDoctorBusy) || errors.Is(err, service.ErrInvalidInterval) {
			return nil, err
		}
		u.log.Errorf("Failed to create booking for patient %d with doctor %d: %+v", req.PatientID, req.DoctorID, err)
		return nil, err
	}

	u.bookingCache.InvalidateDoctor(ctx, order.DoctorID)

	u.log.Infof("Booking created: id=%s, patient=%d, doctor=%d, start=%s", order.ID, order.PatientID, order.DoctorID, order.StartTime.Format(time.RFC3339))
	return converter.OrderToResponse(order), nil
}

// GetNextAppointment returns the patient's soonest booking starting strictly
// after the given reference time. The reference time is always supplied by the
// caller, never taken from shared server state.
func (u *bookingUsecase) GetNextAppointment(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	orders, err := u.orderRepo.FindUpcomingByPatient(u.db.WithContext(ctx), patientID, after)
	if err != nil {
		u.log.Warnf("Failed to find upcoming orders for patient %d: %+v", patientID, err)
		return nil, err
	}

	next := service.NextAppointment(orders, after)
	if next == nil {
		return nil, ErrNoUpcomingBooking
	}

	return converter.OrderToResponse(next), nil
}

// GetLatestAppointment returns the doctor's booking with the maximum start
// time, across past and future alike. Returns (nil, nil) when the doctor has
// no bookings at all.
func (u *bookingUsecase) GetLatestAppointment(ctx context.Context, doctorID int64) (*dto.BookingResponse, error) {
	if cached := u.bookingCache.GetLatest(ctx, doctorID); cached != nil {
		return converter.OrderToResponse(cached), nil
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	orders, err := u.orderRepo.FindByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find orders for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	latest := service.LatestAppointment(orders)
	if latest == nil {
		return nil, nil
	}

	u.bookingCache.SetLatest(ctx, doctorID, latest)

	return converter.OrderToResponse(latest), nil
}

// CancelBooking deletes the order matching both patient and booking id.
// Delete and audit row commit atomically; a missing order leaves storage
// untouched.
func (u *bookingUsecase) CancelBooking(ctx context.Context, patientID int64, bookingID uuid.UUID) error {
	var doctorID int64

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := u.orderRepo.FindByPatientAndID(tx, patientID, bookingID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrBookingNotFound
		}
		doctorID = order.DoctorID

		rows, err := u.orderRepo.Delete(tx, order)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrBookingNotFound
		}

		return u.auditService.LogDelete(ctx, tx, entity.AuditActionBookingCancel, "order", order.ID.String(), order)
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return err
		}
		u.log.Warnf("Failed to cancel booking %s for patient %d: %+v", bookingID, patientID, err)
		return err
	}

	u.bookingCache.InvalidateDoctor(ctx, doctorID)

	u.log.Infof("Booking cancelled: id=%s, patient=%d", bookingID, patientID)
	return nil
}

// isConflictViolation reports whether the error is the orders table rejecting
// an overlapping or duplicate interval at the storage layer.
func isConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
}
