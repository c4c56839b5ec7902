package converter

import (
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		ClinicID:  patient.ClinicID,
		CreatedAt: patient.CreatedAt,
	}

	// Include clinic info if preloaded
	if patient.Clinic.ID != 0 {
		response.Clinic = ClinicToResponse(&patient.Clinic)
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
