package chat

import (
	"context"

	"cleanhurghada/models"
	"cleanhurghada/services/booking"
	"cleanhurghada/services/payment"
)

// Quick-action names exposed to the client.
const (
	ActionOpenCalculator = "open_calculator"
	ActionOpenBooking    = "open_booking"
	ActionOpenRating     = "open_rating"
	ActionStainTips      = "stain_tips"
	ActionContact        = "contact"
)

// QuoteInput is the calculator confirmation: both enums are required, the
// square-meter figure is optional and decorative.
type QuoteInput struct {
	Property models.PropertyType `json:"property"`
	Cleaning models.CleaningType `json:"cleaning"`
	Sqm      int                 `json:"sqm"`
	Area     string              `json:"area"`
}

// Service is the conversation controller: it owns the transcript, the single
// active-widget slot, and the lifecycle of the booking and rating flows.
type Service interface {
	StartSession(ctx context.Context, lang string) (*models.ChatSession, error)
	SendMessage(ctx context.Context, sessionID, text, imageB64 string) (*models.ChatSession, error)
	QuickAction(ctx context.Context, sessionID, action string) (*models.ChatSession, error)
	SetLanguage(ctx context.Context, sessionID, lang string) (*models.ChatSession, error)
	CloseWidget(ctx context.Context, sessionID string) (*models.ChatSession, error)

	ConfirmQuote(ctx context.Context, sessionID string, in QuoteInput) (*models.ChatSession, error)

	SubmitBookingDetails(ctx context.Context, sessionID string, in booking.DetailsInput) (*models.ChatSession, error)
	BookingBack(ctx context.Context, sessionID string) (*models.ChatSession, error)
	BookingSummary(ctx context.Context, sessionID string) (*models.BookingSummary, error)
	BeginPayment(ctx context.Context, sessionID string) (*payment.Intent, error)
	BookingStatus(ctx context.Context, sessionID string) (*models.ChatSession, error)
	ConfirmPayment(ctx context.Context, conf *models.PaymentConfirmation) (*models.ChatSession, error)

	SubmitRating(ctx context.Context, sessionID string, in models.RatingSubmission) (*models.ChatSession, error)
}
