// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agendly/handlers"
	"agendly/middleware"
	"agendly/models"
	"agendly/utils"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.AuthRequired(hb.UserRepo), hb.LogoutHandler)
	}
}

// RegisterClientRoutes registers the client agenda page endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/client")
	{
		api.Use(middleware.AuthRequired(hb.UserRepo, models.RoleClient))
		api.GET("/agenda", hb.ClientAgendaHandler)
		api.DELETE("/appointments/:id", hb.ClientCancelAppointmentHandler)
		api.GET("/profile", hb.ClientProfileHandler)
		api.PUT("/profile", hb.ClientUpdateProfileHandler)
		api.POST("/fcm-token", hb.ClientRegisterFCMTokenHandler)
		api.GET("/notifications", hb.ClientNotificationsHandler)
		api.PUT("/notifications/:id/read", hb.ClientMarkNotificationReadHandler)
	}
}

// RegisterEstablishmentRoutes registers the establishment agenda and roster
// page endpoints.
func RegisterEstablishmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/establishment")
	{
		api.Use(middleware.AuthRequired(hb.UserRepo, models.RoleEstablishment))
		api.GET("/agenda", hb.EstablishmentAgendaHandler)
		api.POST("/appointments", hb.EstablishmentCreateAppointmentHandler)
		api.DELETE("/appointments/:id", hb.EstablishmentCancelAppointmentHandler)
		api.PUT("/working-hours", hb.EstablishmentSetWorkingHoursHandler)
		api.POST("/blocked-dates", hb.EstablishmentBlockDateHandler)
		api.PUT("/profile", hb.EstablishmentUpdateProfileHandler)

		api.GET("/clients", hb.RosterHandler)
		api.GET("/interests", hb.InterestsHandler)
		api.POST("/interests/accept", hb.AcceptInterestHandler)
		api.DELETE("/clients/:clientId", hb.EndRelationHandler)
		api.POST("/promotions", hb.SendPromotionHandler)
	}
}

// RegisterBookingRoutes registers the public establishment view and the
// client-side two-step booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.AuthRequired(hb.UserRepo, models.RoleClient))
		api.GET("/establishments/:establishmentId/agenda", hb.PublicAgendaHandler)
		api.POST("/propose", hb.ProposeBookingHandler)
		api.POST("/confirm/:holdId", hb.ConfirmBookingHandler)
		api.POST("/link-request", hb.RequestLinkHandler)
	}
}

// RegisterStorageRoutes registers the profile photo upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthRequired(hb.UserRepo))
		api.POST("/photo", hb.UploadPhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterEstablishmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
