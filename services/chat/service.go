// Package chat is the conversation controller. A session holds the
// append-only transcript and one active-widget slot; the calculator, booking
// and rating panels are mutually exclusive by construction.
package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"cleanhurghada/locale"
	"cleanhurghada/models"
	"cleanhurghada/services/booking"
	ai "cleanhurghada/services/intelligence"
	"cleanhurghada/services/payment"
	"cleanhurghada/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DefaultChatService struct {
	Store   *SessionStore
	AI      ai.Client
	Gateway payment.Gateway
	Logger  *zap.Logger
}

func newMessage(role models.Role, text string) models.Message {
	return models.Message{ID: uuid.New().String(), Role: role, Text: text}
}

// StartSession opens a conversation with the bilingual greeting as its first
// model message. Arabic is the default language, as on the widget itself.
func (s *DefaultChatService) StartSession(ctx context.Context, lang string) (*models.ChatSession, error) {
	language := locale.Arabic
	if lang != "" {
		parsed, err := locale.Parse(lang)
		if err != nil {
			return nil, err
		}
		language = parsed
	}
	session := &models.ChatSession{
		ID:           uuid.New().String(),
		Lang:         language,
		Messages:     []models.Message{newMessage(models.RoleModel, locale.Greeting)},
		ActiveWidget: models.WidgetNone,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage appends the user message, routes to the assistant (vision when
// an image is attached), and appends exactly one model message. Assistant
// failures become a localized apology; the conversation stays usable.
func (s *DefaultChatService) SendMessage(ctx context.Context, sessionID, text, imageB64 string) (*models.ChatSession, error) {
	if text == "" && imageB64 == "" {
		return nil, ErrEmptyMessage
	}

	// The reply lock is taken before the session is read, so of two
	// concurrent sends exactly one proceeds; the loser sees ErrBusy instead
	// of racing the AI call and clobbering the transcript on save.
	locked, err := s.Store.AcquireReplyLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrBusy
	}
	// Released whatever happens below. The request context may already be
	// canceled by then; a failed send must not leave the session locked.
	defer func() {
		if err := s.Store.ReleaseReplyLock(sessionID); err != nil {
			s.Logger.Error("failed to release reply lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userMsg := newMessage(models.RoleUser, text)
	userMsg.Image = imageB64
	session.Messages = append(session.Messages, userMsg)

	reply := s.generateReply(ctx, session.Lang, text, imageB64)

	session.Messages = append(session.Messages, newMessage(models.RoleModel, reply))
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultChatService) generateReply(ctx context.Context, lang locale.Language, text, imageB64 string) string {
	var reply string
	var err error
	if imageB64 != "" {
		var imageData []byte
		imageData, err = decodeImage(imageB64)
		if err == nil {
			reply, err = s.AI.AnalyzeImage(ctx, imageData, "image/jpeg", text)
		}
	} else {
		reply, err = s.AI.GenerateReply(ctx, text)
	}
	if err != nil {
		s.Logger.Warn("assistant call failed", zap.Error(err))
		return locale.T(lang).Apology
	}
	return reply
}

// decodeImage accepts raw base64 or a data URL.
func decodeImage(imageB64 string) ([]byte, error) {
	if idx := strings.Index(imageB64, ","); idx >= 0 && strings.HasPrefix(imageB64, "data:") {
		imageB64 = imageB64[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return nil, fmt.Errorf("invalid image encoding: %w", err)
	}
	return data, nil
}

// QuickAction either opens a widget or sends a canned localized prompt as if
// the user had typed it.
func (s *DefaultChatService) QuickAction(ctx context.Context, sessionID, action string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch action {
	case ActionOpenCalculator:
		s.openWidget(session, models.WidgetCalculator)
	case ActionOpenBooking:
		s.openWidget(session, models.WidgetBooking)
		if session.Booking == nil {
			// Direct "Book Cleaning": a draft with no quote behind it.
			session.Booking = booking.NewFlow(models.Quote{Area: pricing.Areas[0]})
		}
	case ActionOpenRating:
		s.openWidget(session, models.WidgetRating)
	case ActionStainTips:
		return s.SendMessage(ctx, sessionID, locale.T(session.Lang).TipsPrompt, "")
	case ActionContact:
		return s.SendMessage(ctx, sessionID, locale.T(session.Lang).ContactPrompt, "")
	default:
		return nil, ErrUnknownAction
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// openWidget switches the single widget slot. Leaving the booking widget
// discards its draft, except when a Paymob order is awaiting its outcome:
// the customer may still pay in an iframe that outlived the panel, and the
// webhook must find the flow to confirm against.
func (s *DefaultChatService) openWidget(session *models.ChatSession, w models.ActiveWidget) {
	if session.ActiveWidget == models.WidgetBooking && w != models.WidgetBooking {
		if session.Booking == nil || session.Booking.PendingOrderID == 0 {
			session.Booking = nil
		}
	}
	session.ActiveWidget = w
}

// SetLanguage flips the string table and layout direction; an empty value
// toggles to the other language, matching the widget's single 🌐 button.
// Only the language field changes; transcript and any in-progress draft are
// untouched.
func (s *DefaultChatService) SetLanguage(ctx context.Context, sessionID, lang string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if lang == "" {
		session.Lang = session.Lang.Toggle()
	} else {
		language, err := locale.Parse(lang)
		if err != nil {
			return nil, err
		}
		session.Lang = language
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CloseWidget dismisses whatever panel is open.
func (s *DefaultChatService) CloseWidget(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.openWidget(session, models.WidgetNone)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmQuote turns the calculator selection into a quote and hands off to
// the booking widget, replacing the calculator.
func (s *DefaultChatService) ConfirmQuote(ctx context.Context, sessionID string, in QuoteInput) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ActiveWidget != models.WidgetCalculator {
		return nil, ErrWidgetNotOpen
	}
	if session.Booking != nil && session.Booking.PendingOrderID != 0 {
		// Never overwrite a flow whose payment outcome is still unknown.
		return nil, ErrPaymentInFlight
	}
	quote, err := pricing.Quote(in.Property, in.Cleaning, in.Sqm, in.Area)
	if err != nil {
		return nil, err
	}
	s.openWidget(session, models.WidgetBooking)
	session.Booking = booking.NewFlow(quote)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultChatService) bookingFlow(session *models.ChatSession) (*models.BookingFlow, error) {
	if session.ActiveWidget != models.WidgetBooking || session.Booking == nil {
		return nil, ErrWidgetNotOpen
	}
	return session.Booking, nil
}

func (s *DefaultChatService) SubmitBookingDetails(ctx context.Context, sessionID string, in booking.DetailsInput) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err := s.bookingFlow(session)
	if err != nil {
		return nil, err
	}
	if err := booking.SubmitDetails(flow, in); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultChatService) BookingBack(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err := s.bookingFlow(session)
	if err != nil {
		return nil, err
	}
	if err := booking.Back(flow); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultChatService) BookingSummary(ctx context.Context, sessionID string) (*models.BookingSummary, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err := s.bookingFlow(session)
	if err != nil {
		return nil, err
	}
	return booking.Summary(flow, session.Lang)
}

// BeginPayment starts the gateway sequence and indexes the resulting order so
// the webhook can route its confirmation back to this session. The flow stays
// in review; only a verified confirmation moves it.
func (s *DefaultChatService) BeginPayment(ctx context.Context, sessionID string) (*payment.Intent, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err := s.bookingFlow(session)
	if err != nil {
		return nil, err
	}
	intent, err := booking.BeginPayment(ctx, flow, s.Gateway)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	if err := s.Store.IndexOrder(ctx, intent.OrderID, session.ID); err != nil {
		return nil, err
	}
	return intent, nil
}

// BookingStatus reflects the flow state and, while an order is pending, polls
// the gateway's inquiry endpoint as a fallback to the webhook.
func (s *DefaultChatService) BookingStatus(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	flow := session.Booking
	if flow == nil || flow.State != models.StateReviewingPayment || flow.PendingOrderID == 0 {
		return session, nil
	}
	conf, err := s.Gateway.InquireOrder(ctx, flow.PendingOrderID)
	if err != nil {
		// Inquiry is best-effort; the webhook remains authoritative.
		s.Logger.Warn("order inquiry failed", zap.Int64("orderID", flow.PendingOrderID), zap.Error(err))
		return session, nil
	}
	if conf.Success {
		return s.completeBooking(ctx, session, conf)
	}
	return session, nil
}

// ConfirmPayment is driven by the verified gateway callback. It locates the
// session by order id and finishes the booking.
func (s *DefaultChatService) ConfirmPayment(ctx context.Context, conf *models.PaymentConfirmation) (*models.ChatSession, error) {
	sessionID, err := s.Store.SessionForOrder(ctx, conf.OrderID)
	if err != nil {
		return nil, err
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.completeBooking(ctx, session, conf)
}

func (s *DefaultChatService) completeBooking(ctx context.Context, session *models.ChatSession, conf *models.PaymentConfirmation) (*models.ChatSession, error) {
	// The flow is confirmed against directly, not through bookingFlow: the
	// customer may have dismissed the panel while the payment iframe was
	// still open, and a captured payment must still land.
	flow := session.Booking
	if flow == nil {
		return nil, booking.ErrNoPendingOrder
	}
	if err := booking.ConfirmPayment(flow, conf); err != nil {
		return nil, err
	}
	orderID := flow.PendingOrderID

	// Terminal transition: success message into the transcript, widget
	// dismissed, draft discarded.
	session.Messages = append(session.Messages, newMessage(models.RoleModel, locale.T(session.Lang).Success))
	session.ActiveWidget = models.WidgetNone
	session.Booking = nil
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	if err := s.Store.DropOrder(ctx, orderID); err != nil {
		s.Logger.Warn("failed to drop order index", zap.Int64("orderID", orderID), zap.Error(err))
	}
	s.Logger.Info("booking confirmed", zap.String("sessionID", session.ID), zap.Int64("orderID", orderID))
	return session, nil
}

// SubmitRating turns a 1..5 star rating into a thank-you message embedding
// the score and the verbatim comment, then closes the widget.
func (s *DefaultChatService) SubmitRating(ctx context.Context, sessionID string, in models.RatingSubmission) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ActiveWidget != models.WidgetRating {
		return nil, ErrWidgetNotOpen
	}
	if in.Stars < 1 || in.Stars > 5 {
		return nil, ErrRatingUnset
	}
	text := fmt.Sprintf("%s (%d/5 ⭐ %s)", locale.T(session.Lang).RatingThanks, in.Stars, session.Lang.StarLabel(in.Stars))
	if in.Comment != "" {
		text += "\n\"" + in.Comment + "\""
	}
	session.Messages = append(session.Messages, newMessage(models.RoleModel, text))
	session.ActiveWidget = models.WidgetNone
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
