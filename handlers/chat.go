package handlers

import (
	"errors"
	"net/http"

	"cleanhurghada/locale"
	"cleanhurghada/models"
	"cleanhurghada/services/booking"
	"cleanhurghada/services/chat"
	"cleanhurghada/services/payment"
	"cleanhurghada/services/pricing"
	"cleanhurghada/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversation controller over HTTP.
type ChatHandler struct {
	Svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// sessionResponse decorates the session with the layout direction derived
// from its language, so the client does not duplicate that rule.
type sessionResponse struct {
	*models.ChatSession
	Direction string `json:"direction"`
}

func respondSession(c *gin.Context, session *models.ChatSession) {
	c.JSON(http.StatusOK, sessionResponse{ChatSession: session, Direction: session.Lang.Direction()})
}

// serviceError maps typed service errors onto HTTP statuses. Every failure
// leaves the conversation usable; nothing here is fatal.
func serviceError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var tErr *booking.TransitionError
	var qErr *pricing.ValidationError
	var pErr *payment.ProviderError
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", err.Error())
	case errors.Is(err, chat.ErrBusy):
		utils.JSONError(c, http.StatusConflict, "Reply in progress", err.Error())
	case errors.Is(err, payment.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, "Payment is not configured", err.Error())
	case errors.Is(err, chat.ErrPaymentInFlight):
		utils.JSONError(c, http.StatusConflict, "Payment awaiting confirmation", err.Error())
	case errors.Is(err, booking.ErrPaymentNotConfirmed),
		errors.Is(err, booking.ErrConfirmationMismatch),
		errors.Is(err, booking.ErrNoPendingOrder):
		utils.JSONError(c, http.StatusConflict, "Payment not confirmed", err.Error())
	case errors.As(err, &pErr):
		utils.JSONError(c, http.StatusBadGateway, "Payment provider error", err.Error())
	case errors.As(err, &vErr), errors.As(err, &tErr), errors.As(err, &qErr),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrWidgetNotOpen),
		errors.Is(err, chat.ErrRatingUnset),
		errors.Is(err, chat.ErrUnknownAction):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// StartSession opens a new conversation.
func (h *ChatHandler) StartSession(c *gin.Context) {
	var input struct {
		Lang string `json:"lang"`
	}
	// Body is optional; default language applies when absent.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Svc.StartSession(c.Request.Context(), input.Lang)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid language", err.Error())
		return
	}
	respondSession(c, session)
}

// SendMessage posts a user message (text and/or base64 image) and returns the
// transcript including the assistant's reply.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var input struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.SendMessage(c.Request.Context(), c.Param("sessionID"), input.Text, input.Image)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// QuickAction opens a widget or fires a canned prompt.
func (h *ChatHandler) QuickAction(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.QuickAction(c.Request.Context(), c.Param("sessionID"), input.Action)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// SetLanguage switches the session between Arabic and English. An absent or
// empty lang toggles to the other language.
func (h *ChatHandler) SetLanguage(c *gin.Context) {
	var input struct {
		Lang string `json:"lang"`
	}
	// Body is optional; an empty value means toggle.
	_ = c.ShouldBindJSON(&input)
	session, err := h.Svc.SetLanguage(c.Request.Context(), c.Param("sessionID"), input.Lang)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// CloseWidget dismisses the active widget, if any.
func (h *ChatHandler) CloseWidget(c *gin.Context) {
	session, err := h.Svc.CloseWidget(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// ConfirmQuote accepts the calculator selection and opens the booking widget
// seeded with the quote.
func (h *ChatHandler) ConfirmQuote(c *gin.Context) {
	var input chat.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.ConfirmQuote(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// Catalog serves the static tables the client renders from: enums, areas,
// the price matrix ranges and the localized string tables.
func (h *ChatHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"propertyTypes": models.PropertyTypes(),
		"cleaningTypes": models.CleaningTypes(),
		"areas":         pricing.Areas,
		"currency":      pricing.Currency,
		"strings": gin.H{
			string(locale.English): locale.T(locale.English),
			string(locale.Arabic):  locale.T(locale.Arabic),
		},
	})
}
