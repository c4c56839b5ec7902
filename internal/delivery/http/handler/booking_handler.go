package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/service"
	"patient-booking-api/internal/usecase"
	"patient-booking-api/pkg/response"
	"patient-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPastDate):
			response.Error(w, http.StatusBadRequest, "Cannot book past date", nil)
		case errors.Is(err, service.ErrDoctorBusy):
			response.Error(w, http.StatusBadRequest, "Doctor is busy", nil)
		case errors.Is(err, service.ErrInvalidInterval):
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetNextAppointment returns the patient's soonest booking after the optional
// "after" query parameter (RFC 3339), defaulting to the current time.
func (h *BookingHandler) GetNextAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	after := time.Now()
	if raw := r.URL.Query().Get("after"); raw != "" {
		after, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid after parameter, use RFC 3339", nil)
			return
		}
	}

	booking, err := h.bookingUsecase.GetNextAppointment(r.Context(), patientID, after)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrNoUpcomingBooking):
			response.NotFound(w, "No upcoming booking found")
		default:
			response.InternalServerError(w, "Failed to get next appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Next appointment retrieved successfully", booking)
}

func (h *BookingHandler) GetLatestAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetLatestAppointment(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get latest appointment")
		return
	}

	if booking == nil {
		response.Success(w, http.StatusOK, "Doctor has no bookings", nil)
		return
	}

	response.Success(w, http.StatusOK, "Latest appointment retrieved successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	err = h.bookingUsecase.CancelBooking(r.Context(), patientID, bookingID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking does not exist")
			return
		}
		response.InternalServerError(w, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking removed", nil)
}
