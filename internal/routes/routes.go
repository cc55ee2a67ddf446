package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/cache"
	"github.com/valentinobarber/site-api/internal/config"
	"github.com/valentinobarber/site-api/internal/handlers"
	infraRepo "github.com/valentinobarber/site-api/internal/infra/repository"
	"github.com/valentinobarber/site-api/internal/middleware"
	"github.com/valentinobarber/site-api/internal/storage"
	ucbooking "github.com/valentinobarber/site-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	settingsCache := cache.New(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKING LEDGER
	// ======================================================
	reserveUC := ucbooking.NewReserve(bookingRepo, auditDispatcher)
	listUC := ucbooking.NewList(bookingRepo, cfg.Timezone)
	cancelUC := ucbooking.NewCancel(bookingRepo, auditDispatcher)
	completeUC := ucbooking.NewComplete(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		reserveUC,
		listUC,
		cancelUC,
		completeUC,
		cfg.Timezone,
	)

	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	galleryHandler := handlers.NewGalleryHandler(db, uploader, auditDispatcher)
	testimonialHandler := handlers.NewTestimonialHandler(db, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(db, settingsCache, auditDispatcher)

	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)

		api.GET("/barbers", barberHandler.List)
		api.GET("/services", serviceHandler.List)
		api.GET("/gallery", galleryHandler.List)
		api.GET("/testimonials", testimonialHandler.List)
		api.GET("/settings", settingsHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.POST("/barbers", barberHandler.Create)
			secured.PUT("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/gallery", galleryHandler.Create)
			secured.POST("/gallery/upload", galleryHandler.Upload)
			secured.PUT("/gallery/:id", galleryHandler.Update)
			secured.DELETE("/gallery/:id", galleryHandler.Delete)

			secured.POST("/testimonials", testimonialHandler.Create)
			secured.PUT("/testimonials/:id", testimonialHandler.Update)
			secured.DELETE("/testimonials/:id", testimonialHandler.Delete)

			secured.PUT("/settings", settingsHandler.Update)

			secured.PUT("/admin/change-password", authHandler.ChangePassword)
			secured.PUT("/admin/change-credentials", authHandler.ChangeCredentials)

			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
