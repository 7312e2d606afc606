package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propertychat/internal/model"
	"propertychat/internal/service"
)

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	properties *service.PropertyService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(properties *service.PropertyService) *FeedbackHandler {
	return &FeedbackHandler{
		properties: properties,
	}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.properties.LogFeedback(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FeedbackResponse{
		Success: true,
		Message: "Feedback logged successfully",
	})
}
