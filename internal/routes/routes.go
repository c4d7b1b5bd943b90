package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// Handlers is everything the router needs; main builds it.
type Handlers struct {
	Health    *handlers.HealthHandler
	Public    *handlers.PublicHandler
	Session   *handlers.SessionHandler
	Admin     *handlers.AdminHandler
	AuditLogs *handlers.AuditLogsHandler
	Auth      *handlers.AuthHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, jwtSecret string, log logrus.FieldLogger) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", h.Health.Check)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/services", h.Public.ListServices)
			public.GET("/staff", h.Public.ListStaff)
			public.GET("/opening", h.Public.Opening)
			public.GET("/availability", h.Public.Availability)
			public.POST("/appointments", h.Public.CreateBooking)

			public.POST("/sessions", h.Session.Start)
			public.GET("/sessions/:id", h.Session.Get)
			public.POST("/sessions/:id/slot", h.Session.SelectSlot)
			public.POST("/sessions/:id/confirm", h.Session.Confirm)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", h.Auth.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(jwtSecret))
		{
			admin.GET("/bookings", h.Admin.ListDay)
			admin.POST("/bookings", h.Admin.CreateManual)
			admin.DELETE("/bookings/:id", h.Admin.Delete)

			admin.GET("/audit-logs", h.AuditLogs.List)
		}
	}
}
