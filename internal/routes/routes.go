package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/audit"
	"github.com/sharpfade/barber-booking/internal/cache"
	"github.com/sharpfade/barber-booking/internal/config"
	"github.com/sharpfade/barber-booking/internal/handlers"
	infraRepo "github.com/sharpfade/barber-booking/internal/infra/repository"
	"github.com/sharpfade/barber-booking/internal/middleware"
	"github.com/sharpfade/barber-booking/internal/notify"
	"github.com/sharpfade/barber-booking/internal/storage"
	ucBooking "github.com/sharpfade/barber-booking/internal/usecase/booking"
)

type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    *zap.Logger
	SlotCache *cache.SlotCache
	Gallery   *storage.GalleryStorage
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	db := deps.DB
	cfg := deps.Config
	logger := deps.Logger

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)
	notifier := notify.NewDispatcher(notify.NewLogSender(logger), logger)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	getDaySlotsUC := ucBooking.NewGetDaySlots(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		notifier,
		cfg.Timezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, deps.Gallery, logger)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsUC,
		deps.SlotCache,
		cfg.Timezone,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		getDaySlotsUC,
		createBookingUC,
		deps.SlotCache,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO (fluxo de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.DaySlots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/gallery", galleryHandler.List)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADO (painel do barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me/profile", meHandler.UpdateProfile)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/clients", clientHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			// ------------------------------
			// GALLERY
			// ------------------------------
			secured.POST("/me/gallery", galleryHandler.Upload)
			secured.DELETE("/me/gallery/:id", galleryHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
