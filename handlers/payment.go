package handlers

import (
	"errors"
	"net/http"

	"cleanhurghada/services/booking"
	"cleanhurghada/services/chat"
	"cleanhurghada/services/payment"
	"cleanhurghada/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler receives Paymob's processed-transaction webhook. This is the
// authoritative confirmation channel: the booking flow only advances here or
// through the inquiry fallback, never because a payment window was closed.
type PaymentHandler struct {
	Client *payment.Client
	Svc    chat.Service
}

func NewPaymentHandler(client *payment.Client, svc chat.Service) *PaymentHandler {
	return &PaymentHandler{Client: client, Svc: svc}
}

// Callback verifies the HMAC signature and applies the outcome to the owning
// session. Unverifiable or unmatched callbacks are rejected; a non-success
// outcome is acknowledged but advances nothing.
func (h *PaymentHandler) Callback(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		Type string                      `json:"type"`
		Obj  payment.CallbackTransaction `json:"obj"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid callback payload", err.Error())
		return
	}
	if body.Type != "TRANSACTION" {
		// Paymob also posts token/refund events; only transactions matter here.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	receivedHMAC := c.Query("hmac")
	if err := h.Client.VerifyCallback(body.Obj, receivedHMAC); err != nil {
		logger.Warn("rejected payment callback", zap.Int64("orderID", body.Obj.Order.ID), zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Callback rejected", err.Error())
		return
	}

	conf := body.Obj.Confirmation()
	if !conf.Success {
		logger.Info("payment not successful", zap.Int64("orderID", conf.OrderID))
		c.JSON(http.StatusOK, gin.H{"status": "recorded", "success": false})
		return
	}

	if _, err := h.Svc.ConfirmPayment(c.Request.Context(), conf); err != nil {
		switch {
		case errors.Is(err, chat.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Unknown order", err.Error())
		case errors.Is(err, booking.ErrConfirmationMismatch),
			errors.Is(err, booking.ErrNoPendingOrder),
			errors.Is(err, booking.ErrPaymentNotConfirmed):
			utils.JSONError(c, http.StatusConflict, "Confirmation mismatch", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to apply confirmation", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
