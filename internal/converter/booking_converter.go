package converter

import (
	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/domain/entity"
)

// OrderToResponse converts an Order entity to a BookingResponse DTO
func OrderToResponse(order *entity.Order) *dto.BookingResponse {
	if order == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:          order.ID,
		PatientID:   order.PatientID,
		DoctorID:    order.DoctorID,
		StartTime:   order.StartTime,
		EndTime:     order.EndTime,
		SurgeryType: string(order.SurgeryType),
		CreatedAt:   order.CreatedAt,
	}
}

// OrdersToResponses converts a slice of Order entities to BookingResponse DTOs
func OrdersToResponses(orders []entity.Order) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(orders))
	for i, order := range orders {
		resp := OrderToResponse(&order)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
