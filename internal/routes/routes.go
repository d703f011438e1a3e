package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-appointment-server/internal/config"
	"hospital-appointment-server/internal/handlers"
	"hospital-appointment-server/internal/middleware"
	"hospital-appointment-server/internal/models"
	"hospital-appointment-server/internal/scheduling"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	store := scheduling.NewGormStore(db)
	service := scheduling.NewService(store, scheduling.SlotConfig{
		StartHour:          cfg.Clinic.OpenHour,
		EndHour:            cfg.Clinic.CloseHour,
		BreakStartHour:     cfg.Clinic.BreakStartHour,
		BreakEndHour:       cfg.Clinic.BreakEndHour,
		GranularityMinutes: cfg.Clinic.GranularityMinutes,
	})

	directoryHandler := handlers.NewDirectoryHandler(service)
	appointmentHandler := handlers.NewAppointmentHandler(service)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.GET("/departments", directoryHandler.GetDepartments)
		public.GET("/departments/:id/doctors", directoryHandler.GetDoctorsByDepartment)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		appointmentRoutes := private.Group("/appointments")
		{
			// Slot grid and the advisory availability probe; any role
			appointmentRoutes.GET("/slots", appointmentHandler.GetDaySlots)
			appointmentRoutes.GET("/check-slot", appointmentHandler.CheckSlot)

			// Patients book for themselves; admins on a patient's behalf
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleAdmin), appointmentHandler.CreateAppointment)

			// Listing is role-filtered inside the service
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)

			// Lifecycle transitions; role/ownership checks in the service
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.DELETE("/:id", appointmentHandler.CancelAppointment)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
