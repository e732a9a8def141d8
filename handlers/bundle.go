package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle carries every route handler the router needs, assembled once
// in main.
type HandlerBundle struct {
	// Chat endpoints.
	StartSession gin.HandlerFunc
	SendMessage  gin.HandlerFunc
	QuickAction  gin.HandlerFunc
	SetLanguage  gin.HandlerFunc
	CloseWidget  gin.HandlerFunc
	ConfirmQuote gin.HandlerFunc
	Catalog      gin.HandlerFunc

	// Booking wizard endpoints.
	BookingDetails gin.HandlerFunc
	BookingBack    gin.HandlerFunc
	BookingSummary gin.HandlerFunc
	BookingPay     gin.HandlerFunc
	BookingStatus  gin.HandlerFunc

	// Rating endpoint.
	SubmitRating gin.HandlerFunc

	// Payment webhook.
	PaymentCallback gin.HandlerFunc
}
