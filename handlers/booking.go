package handlers

import (
	"net/http"

	"cleanhurghada/services/booking"
	"cleanhurghada/services/chat"
	"cleanhurghada/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler drives the booking wizard embedded in a chat session.
type BookingHandler struct {
	Svc chat.Service
}

func NewBookingHandler(svc chat.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// SubmitDetails validates the details form and moves the wizard to the
// payment review step.
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	var input booking.DetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.SubmitBookingDetails(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// Back returns from payment review to the details form, keeping all fields.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Svc.BookingBack(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}

// Summary renders the read-only payment review.
func (h *BookingHandler) Summary(c *gin.Context) {
	summary, err := h.Svc.BookingSummary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Pay starts the gateway sequence and returns the iframe URL the customer
// completes payment in. The wizard stays in review until confirmation.
func (h *BookingHandler) Pay(c *gin.Context) {
	intent, err := h.Svc.BeginPayment(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

// Status reports the wizard state; while an order is pending it also polls
// the provider as a fallback to the webhook.
func (h *BookingHandler) Status(c *gin.Context) {
	session, err := h.Svc.BookingStatus(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}
