package converter

import (
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to a ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:          clinic.ID,
		Name:        clinic.Name,
		SurgeryType: string(clinic.SurgeryType),
		CreatedAt:   clinic.CreatedAt,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to DTOs
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i, clinic := range clinics {
		resp := ClinicToResponse(&clinic)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
