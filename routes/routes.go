package routes

import (
	"net/http"
	"time"

	"cleanhurghada/handlers"
	"cleanhurghada/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.GET("/catalog", hb.Catalog)
		api.POST("/session", hb.StartSession)
		api.POST("/:sessionID/message", hb.SendMessage)
		api.POST("/:sessionID/action", hb.QuickAction)
		api.PUT("/:sessionID/language", hb.SetLanguage)
		api.DELETE("/:sessionID/widget", hb.CloseWidget)
		api.POST("/:sessionID/quote", hb.ConfirmQuote)

		// Booking wizard, embedded in the conversation.
		api.POST("/:sessionID/booking/details", hb.BookingDetails)
		api.POST("/:sessionID/booking/back", hb.BookingBack)
		api.GET("/:sessionID/booking/summary", hb.BookingSummary)
		api.POST("/:sessionID/booking/pay", hb.BookingPay)
		api.GET("/:sessionID/booking/status", hb.BookingStatus)

		api.POST("/:sessionID/rating", hb.SubmitRating)
	}
}

// RegisterPaymentRoutes registers the provider-facing webhook.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/callback", hb.PaymentCallback)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
