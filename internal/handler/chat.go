package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propertychat/internal/model"
	"propertychat/internal/service"
)

// ChatHandler handles chat session HTTP requests
type ChatHandler struct {
	chat        *service.ConversationService
	typingDelay time.Duration
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ConversationService, typingDelay time.Duration) *ChatHandler {
	return &ChatHandler{
		chat:        chat,
		typingDelay: typingDelay,
	}
}

// Start handles POST /api/v1/chat/sessions
func (h *ChatHandler) Start(c *gin.Context) {
	var req model.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.chat.Start(c.Request.Context(), req.Persona)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/v1/chat/sessions/:id
func (h *ChatHandler) Get(c *gin.Context) {
	state, err := h.chat.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Reset handles DELETE /api/v1/chat/sessions/:id
func (h *ChatHandler) Reset(c *gin.Context) {
	state, err := h.chat.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Send handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.chat.Send(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendStream handles POST /api/v1/chat/sessions/:id/messages/stream
func (h *ChatHandler) SendStream(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// fail before switching to an event stream when the session is unknown
	if _, err := h.chat.Get(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := startSSE(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	_, err := h.chat.SendStream(c.Request.Context(), c.Param("id"), req.Content, h.typingDelay,
		func(event string, data any) error {
			if err := sendSSE(c, event, data); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})
	if err != nil {
		_ = sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
	}
}

// UpdateCriteria handles PATCH /api/v1/chat/sessions/:id/criteria
func (h *ChatHandler) UpdateCriteria(c *gin.Context) {
	var req model.SearchCriteria
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := h.chat.UpdateCriteria(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdatePreferences handles PATCH /api/v1/chat/sessions/:id/preferences
func (h *ChatHandler) UpdatePreferences(c *gin.Context) {
	var req model.UserPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := h.chat.UpdatePreferences(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleFavorite handles POST /api/v1/chat/sessions/:id/favorites/:propertyId
func (h *ChatHandler) ToggleFavorite(c *gin.Context) {
	state, favorite, err := h.chat.ToggleFavorite(c.Request.Context(), c.Param("id"), c.Param("propertyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "favorite": favorite})
}
