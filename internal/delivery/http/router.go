package http

import (
	"net/http"

	"uhc-health-portal/internal/delivery/http/handler"
	"uhc-health-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	wardHandler        *handler.WardHandler
	householdHandler   *handler.HouseholdHandler
	memberHandler      *handler.MemberHandler
	vaccinationHandler *handler.VaccinationHandler
	ashaWorkerHandler  *handler.AshaWorkerHandler
	reviewHandler      *handler.ReviewHandler
	appointmentHandler *handler.AppointmentHandler
	hospitalHandler    *handler.HospitalHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	wardHandler *handler.WardHandler,
	householdHandler *handler.HouseholdHandler,
	memberHandler *handler.MemberHandler,
	vaccinationHandler *handler.VaccinationHandler,
	ashaWorkerHandler *handler.AshaWorkerHandler,
	reviewHandler *handler.ReviewHandler,
	appointmentHandler *handler.AppointmentHandler,
	hospitalHandler *handler.HospitalHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		wardHandler:        wardHandler,
		householdHandler:   householdHandler,
		memberHandler:      memberHandler,
		vaccinationHandler: vaccinationHandler,
		ashaWorkerHandler:  ashaWorkerHandler,
		reviewHandler:      reviewHandler,
		appointmentHandler: appointmentHandler,
		hospitalHandler:    hospitalHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/user/{id}", r.authHandler.GetUser).Methods(http.MethodGet)

	// Wards
	api.HandleFunc("/wards", r.wardHandler.GetAllWards).Methods(http.MethodGet)
	api.HandleFunc("/wards", r.wardHandler.CreateWard).Methods(http.MethodPost)
	api.HandleFunc("/wards/{wardId}", r.wardHandler.GetWard).Methods(http.MethodGet)

	// Households. The static segments must register before the {householdId}
	// catch-all so /households/all and /households/ward/... resolve.
	api.HandleFunc("/households", r.householdHandler.CreateHousehold).Methods(http.MethodPost)
	api.HandleFunc("/households/all", r.householdHandler.GetAllHouseholds).Methods(http.MethodGet)
	api.HandleFunc("/households/ward/{wardId}", r.householdHandler.GetHouseholdsByWard).Methods(http.MethodGet)
	api.HandleFunc("/households/{householdId}", r.householdHandler.GetHousehold).Methods(http.MethodGet)
	api.HandleFunc("/households/{householdId}/update", r.householdHandler.UpdateHousehold).Methods(http.MethodPost)

	// Members
	api.HandleFunc("/members", r.memberHandler.CreateMember).Methods(http.MethodPost)
	api.HandleFunc("/members/ward/{wardId}", r.memberHandler.GetMembersByWard).Methods(http.MethodGet)
	api.HandleFunc("/members/household/{householdId}", r.memberHandler.GetMembersByHousehold).Methods(http.MethodGet)

	// Patient search
	api.HandleFunc("/search/patients", r.householdHandler.SearchPatients).Methods(http.MethodGet)

	// Vaccinations
	api.HandleFunc("/vaccinations/member/{memberId}/add", r.vaccinationHandler.AddVaccination).Methods(http.MethodPost)
	api.HandleFunc("/vaccinations/member/{memberId}", r.vaccinationHandler.GetVaccinationsByMember).Methods(http.MethodGet)

	// ASHA worker administration
	api.HandleFunc("/asha-workers", r.ashaWorkerHandler.GetAllWorkers).Methods(http.MethodGet)
	api.HandleFunc("/asha-workers", r.ashaWorkerHandler.CreateWorker).Methods(http.MethodPost)
	api.HandleFunc("/asha-workers/{id}", r.ashaWorkerHandler.UpdateWorker).Methods(http.MethodPut)
	api.HandleFunc("/asha-workers/{id}", r.ashaWorkerHandler.DeleteWorker).Methods(http.MethodDelete)
	api.HandleFunc("/asha/{ashaId}/suspend", r.ashaWorkerHandler.SuspendWorker).Methods(http.MethodPost)
	api.HandleFunc("/asha/{ashaId}/reactivate", r.ashaWorkerHandler.ReactivateWorker).Methods(http.MethodPost)

	// ASHA reviews
	api.HandleFunc("/asha/{ashaId}/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)
	api.HandleFunc("/asha/{ashaId}/reviews", r.reviewHandler.GetReviewsByAsha).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/doctor/{doctorId}", r.appointmentHandler.GetAppointmentsByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)

	// Hospital directory
	api.HandleFunc("/hospitals", r.hospitalHandler.GetAllHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
