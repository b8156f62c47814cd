package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/clock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	clk := clock.System()

	var availabilityCache *cache.Availability
	if rdb != nil {
		availabilityCache = cache.NewAvailability(rdb)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING
	// ======================================================
	conflictDetector := ucAppointment.NewConflictDetector(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		conflictDetector,
		clk,
		availabilityCache,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		conflictDetector,
		clk,
		availabilityCache,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		clk,
		availabilityCache,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listByDoctorUC := ucAppointment.NewListAppointmentsByDoctor(appointmentRepo)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
	)

	getScheduleUC := ucAppointment.NewGetSchedule(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	doctorHandler := handlers.NewDoctorHandler(db)
	patientHandler := handlers.NewPatientHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		getAppointmentUC,
		listByDoctorUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		getAvailabilityUC,
		getScheduleUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// DOCTORS
			// ------------------------------
			secured.GET("/doctors", doctorHandler.List)
			secured.POST("/doctors", doctorHandler.Create)
			secured.GET("/doctors/:id", doctorHandler.Get)
			secured.PATCH("/doctors/:id", doctorHandler.Update)

			secured.GET("/doctors/:id/appointments", appointmentHandler.ListByDoctor)
			secured.GET("/doctors/:id/availability", scheduleHandler.Availability)
			secured.GET("/doctors/:id/schedule", scheduleHandler.Schedule)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/patients", patientHandler.List)
			secured.POST("/patients", patientHandler.Create)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
