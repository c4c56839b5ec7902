package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/service"
	"patient-booking-api/internal/usecase"
	"patient-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubBookingUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	nextFn   func(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error)
	latestFn func(ctx context.Context, doctorID int64) (*dto.BookingResponse, error)
	cancelFn func(ctx context.Context, patientID int64, bookingID uuid.UUID) error
}

func (s *stubBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookingUsecase) GetNextAppointment(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error) {
	return s.nextFn(ctx, patientID, after)
}

func (s *stubBookingUsecase) GetLatestAppointment(ctx context.Context, doctorID int64) (*dto.BookingResponse, error) {
	return s.latestFn(ctx, doctorID)
}

func (s *stubBookingUsecase) CancelBooking(ctx context.Context, patientID int64, bookingID uuid.UUID) error {
	return s.cancelFn(ctx, patientID, bookingID)
}

func newTestRouter(u usecase.BookingUsecase) *mux.Router {
	h := NewBookingHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/booking", h.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/booking/patient/{patientId}/next", h.GetNextAppointment).Methods(http.MethodGet)
	r.HandleFunc("/booking/doctor/{doctorId}/latest", h.GetLatestAppointment).Methods(http.MethodGet)
	r.HandleFunc("/booking/patient/{patientId}/{bookingId}", h.CancelBooking).Methods(http.MethodDelete)
	return r
}

func createBookingBody() string {
	return `{"start_time":"2026-03-10T14:00:00Z","end_time":"2026-03-10T14:30:00Z","patient_id":1,"doctor_id":2}`
}

func TestCreateBooking(t *testing.T) {
	booked := &dto.BookingResponse{
		ID:        uuid.New(),
		PatientID: 1,
		DoctorID:  2,
		StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       string
		usecaseErr error
		wantStatus int
	}{
		{"created", createBookingBody(), nil, http.StatusCreated},
		{"past date", createBookingBody(), service.ErrPastDate, http.StatusBadRequest},
		{"doctor busy", createBookingBody(), service.ErrDoctorBusy, http.StatusBadRequest},
		{"invalid interval", createBookingBody(), service.ErrInvalidInterval, http.StatusBadRequest},
		{"patient missing", createBookingBody(), usecase.ErrPatientNotFound, http.StatusNotFound},
		{"doctor missing", createBookingBody(), usecase.ErrDoctorNotFound, http.StatusNotFound},
		{"storage failure", createBookingBody(), errors.New("connection refused"), http.StatusInternalServerError},
		{"malformed json", `{"start_time":`, nil, http.StatusBadRequest},
		{"missing fields", `{"patient_id":1}`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubBookingUsecase{
				createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
					if tt.usecaseErr != nil {
						return nil, tt.usecaseErr
					}
					return booked, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newTestRouter(stub).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetNextAppointment(t *testing.T) {
	booking := &dto.BookingResponse{
		ID:        uuid.New(),
		PatientID: 7,
		DoctorID:  2,
		StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	t.Run("found", func(t *testing.T) {
		stub := &stubBookingUsecase{
			nextFn: func(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error) {
				if patientID != 7 {
					t.Errorf("patientID = %d, want 7", patientID)
				}
				return booking, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/patient/7/next", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp struct {
			Data dto.BookingResponse `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Data.ID != booking.ID {
			t.Errorf("booking id = %s, want %s", resp.Data.ID, booking.ID)
		}
	})

	t.Run("explicit after parameter is forwarded", func(t *testing.T) {
		after := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		stub := &stubBookingUsecase{
			nextFn: func(ctx context.Context, patientID int64, got time.Time) (*dto.BookingResponse, error) {
				if !got.Equal(after) {
					t.Errorf("after = %v, want %v", got, after)
				}
				return booking, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/patient/7/next?after=2026-03-10T12:00:00Z", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("invalid after parameter", func(t *testing.T) {
		stub := &stubBookingUsecase{
			nextFn: func(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error) {
				t.Error("usecase should not be called")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/patient/7/next?after=tomorrow", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("no upcoming booking", func(t *testing.T) {
		stub := &stubBookingUsecase{
			nextFn: func(ctx context.Context, patientID int64, after time.Time) (*dto.BookingResponse, error) {
				return nil, usecase.ErrNoUpcomingBooking
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/patient/7/next", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid patient id", func(t *testing.T) {
		stub := &stubBookingUsecase{}

		req := httptest.NewRequest(http.MethodGet, "/booking/patient/abc/next", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestGetLatestAppointment(t *testing.T) {
	t.Run("doctor without bookings gets empty result", func(t *testing.T) {
		stub := &stubBookingUsecase{
			latestFn: func(ctx context.Context, doctorID int64) (*dto.BookingResponse, error) {
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/doctor/2/latest", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		stub := &stubBookingUsecase{
			latestFn: func(ctx context.Context, doctorID int64) (*dto.BookingResponse, error) {
				return nil, usecase.ErrDoctorNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/booking/doctor/99/latest", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := uuid.New()

	t.Run("removed", func(t *testing.T) {
		stub := &stubBookingUsecase{
			cancelFn: func(ctx context.Context, patientID int64, id uuid.UUID) error {
				if patientID != 7 || id != bookingID {
					t.Errorf("cancel called with patient %d booking %s", patientID, id)
				}
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/booking/patient/7/"+bookingID.String(), nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		stub := &stubBookingUsecase{
			cancelFn: func(ctx context.Context, patientID int64, id uuid.UUID) error {
				return usecase.ErrBookingNotFound
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/booking/patient/7/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("invalid booking id", func(t *testing.T) {
		stub := &stubBookingUsecase{}

		req := httptest.NewRequest(http.MethodDelete, "/booking/patient/7/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		newTestRouter(stub).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
