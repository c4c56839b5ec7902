package usecase

import (
	"context"

	"patient-booking-api/internal/converter"
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/domain/entity"
	"patient-booking-api/internal/domain/repository"
	"patient-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicUsecase interface {
	CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	GetClinic(ctx context.Context, id int64) (*dto.ClinicResponse, error)
	GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error)
}

type clinicUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		db:           db,
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
	}
}

func (u *clinicUsecase) CreateClinic(ctx context.Context, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	clinic := &entity.Clinic{
		Name:        req.Name,
		SurgeryType: entity.SurgeryType(req.SurgeryType),
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.clinicRepo.Create(tx, clinic); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, entity.AuditActionClinicCreate, "clinic", itoa(clinic.ID), clinic)
	})
	if err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetClinic(ctx context.Context, id int64) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", id, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all clinics: %+v", err)
		return nil, err
	}

	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}
