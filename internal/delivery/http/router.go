package http

import (
	"net/http"

	"patient-booking-api/internal/delivery/http/handler"
	"patient-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	bookingHandler  *handler.BookingHandler
	patientHandler  *handler.PatientHandler
	doctorHandler   *handler.DoctorHandler
	clinicHandler   *handler.ClinicHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	clinicHandler *handler.ClinicHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		bookingHandler:  bookingHandler,
		patientHandler:  patientHandler,
		doctorHandler:   doctorHandler,
		clinicHandler:   clinicHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/token", r.authHandler.IssueToken).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Booking routes (protected)
	booking := api.PathPrefix("/booking").Subrouter()
	booking.Use(r.authMiddleware.Authenticate)
	booking.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	booking.HandleFunc("/patient/{patientId}/next", r.bookingHandler.GetNextAppointment).Methods(http.MethodGet)
	booking.HandleFunc("/doctor/{doctorId}/latest", r.bookingHandler.GetLatestAppointment).Methods(http.MethodGet)
	booking.HandleFunc("/patient/{patientId}/{bookingId}", r.bookingHandler.CancelBooking).Methods(http.MethodDelete)

	// Reference data routes (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	protected.HandleFunc("/clinics", r.clinicHandler.CreateClinic).Methods(http.MethodPost)
	protected.HandleFunc("/clinics", r.clinicHandler.GetAllClinics).Methods(http.MethodGet)
	protected.HandleFunc("/clinics/{id}", r.clinicHandler.GetClinic).Methods(http.MethodGet)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
