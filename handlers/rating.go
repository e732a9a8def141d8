package handlers

import (
	"net/http"

	"cleanhurghada/models"
	"cleanhurghada/services/chat"
	"cleanhurghada/utils"

	"github.com/gin-gonic/gin"
)

// RatingHandler accepts the post-service star rating.
type RatingHandler struct {
	Svc chat.Service
}

func NewRatingHandler(svc chat.Service) *RatingHandler {
	return &RatingHandler{Svc: svc}
}

// Submit records a 1..5 star rating with an optional comment and posts the
// thank-you message into the conversation.
func (h *RatingHandler) Submit(c *gin.Context) {
	var input models.RatingSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Svc.SubmitRating(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondSession(c, session)
}
