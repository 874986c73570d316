package http

import (
	"net/http"

	"go-hospital-booking/internal/delivery/http/handler"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	userHandler          *handler.UserHandler
	doctorProfileHandler *handler.DoctorProfileHandler
	timeSlotHandler      *handler.TimeSlotHandler
	appointmentHandler   *handler.AppointmentHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	doctorProfileHandler *handler.DoctorProfileHandler,
	timeSlotHandler *handler.TimeSlotHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		userHandler:          userHandler,
		doctorProfileHandler: doctorProfileHandler,
		timeSlotHandler:      timeSlotHandler,
		appointmentHandler:   appointmentHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// User routes (public)
	users := r.router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", r.userHandler.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", r.userHandler.Login).Methods(http.MethodPost)

	// User routes (protected)
	usersProtected := r.router.PathPrefix("/users").Subrouter()
	usersProtected.Use(r.authMiddleware.Authenticate)
	usersProtected.HandleFunc("", r.userHandler.ListUsers).Methods(http.MethodGet)
	usersProtected.HandleFunc("/doctor_profile", r.doctorProfileHandler.CreateProfile).Methods(http.MethodPost)
	usersProtected.HandleFunc("/doctor_profile", r.doctorProfileHandler.UpdateProfile).Methods(http.MethodPut)
	usersProtected.HandleFunc("/doctor_profile", r.doctorProfileHandler.GetProfile).Methods(http.MethodGet)
	usersProtected.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	usersProtected.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	usersProtected.HandleFunc("/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Auth routes
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/refresh-token", r.userHandler.RefreshToken).Methods(http.MethodPost)

	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.userHandler.Logout).Methods(http.MethodPost)

	// Appointment routes (protected)
	appointments := r.router.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)

	// Time slot management (doctor only for mutations)
	appointments.Handle("/create-time-slot",
		middleware.RequireDoctor(http.HandlerFunc(r.timeSlotHandler.CreateSlot))).Methods(http.MethodPost)
	appointments.HandleFunc("/get-time-slot/{id}", r.timeSlotHandler.GetSlot).Methods(http.MethodGet)
	appointments.Handle("/update-time-slot/{id}",
		middleware.RequireDoctor(http.HandlerFunc(r.timeSlotHandler.UpdateSlot))).Methods(http.MethodPut)
	appointments.Handle("/delete-time-slot/{id}",
		middleware.RequireDoctor(http.HandlerFunc(r.timeSlotHandler.DeleteSlot))).Methods(http.MethodDelete)
	appointments.HandleFunc("/get-all-time-slots", r.timeSlotHandler.ListSlots).Methods(http.MethodGet)

	// Booking lifecycle
	appointments.Handle("/book-appointment",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.BookAppointment))).Methods(http.MethodPost)
	appointments.Handle("/complete-appointment/{id}",
		middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.CompleteAppointment))).Methods(http.MethodPost)
	appointments.Handle("/cancel-appointment/{id}",
		middleware.RequireRole(entity.RolePatient, entity.RoleDoctor)(http.HandlerFunc(r.appointmentHandler.CancelAppointment))).Methods(http.MethodPost)
	appointments.HandleFunc("/get-all-appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/get-appointment/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Admin routes
	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
