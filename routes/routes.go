package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"alabraar/config"
	"alabraar/handlers"
	"alabraar/middleware"
	"alabraar/models"
	"alabraar/utils"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:id", hb.GetUserByIDHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.PUT("/:id", hb.UpdateUserHandler)
		api.DELETE("/revoke", hb.RevokeUserTokenHandler)
	}
}

// RegisterUstaadhRoutes registers the public tutor directory.
func RegisterUstaadhRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ustaadhs")
	{
		api.GET("", hb.ListUstaadhsHandler)
	}
}

// RegisterAvailabilityRoutes registers template and slot-derivation endpoints.
// Reads are public so students can browse tutors before signing in; writes
// belong to the ustaadh who owns the template.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.GetAvailabilityHandler)
		api.GET("/slots", hb.GetTimeSlotsHandler)
		api.GET("/booked", hb.GetBookedSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleUstaadh))
		protected.POST("", hb.SetAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.CreateBookingHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/slots/:slotID/complete", hb.CompleteSlotHandler)
		api.POST("/:id/slots/:slotID/cancel", hb.CancelSlotHandler)
		api.POST("/:id/payment-intent", hb.PaymentIntentHandler)
		api.POST("/:id/settle", hb.SettlePaymentHandler)
	}
}

// RegisterMessageRoutes registers direct-message endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.SendMessageHandler)
		api.GET("/unread-count", hb.UnreadCountHandler)
		api.GET("/:userID", hb.GetConversationHandler)
		api.POST("/:userID/read", hb.MarkReadHandler)
	}
}

// RegisterAchievementRoutes registers badge endpoints.
func RegisterAchievementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/achievements")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/my-achievements", hb.MyAchievementsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		api.GET("/users", hb.ListUsersHandler)
		api.PUT("/ustaadhs/:id/approve", hb.ApproveUstaadhHandler)
		api.PUT("/users/:id/suspension", hb.SetSuspensionHandler)
		api.POST("/achievements", hb.AwardAchievementHandler)
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
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterUstaadhRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterAchievementRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
