package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propertychat/internal/model"
	"propertychat/internal/service"
)

// ListingHandler handles the seller onboarding wizard
type ListingHandler struct {
	onboarding *service.OnboardingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(onboarding *service.OnboardingService) *ListingHandler {
	return &ListingHandler{onboarding: onboarding}
}

// Upload handles POST /api/v1/listings/upload
func (h *ListingHandler) Upload(c *gin.Context) {
	var req model.ListingUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	draft, err := h.onboarding.Upload(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.ListingUploadResponse{
		PropertyID: draft.ID,
		Status:     string(draft.Step),
		Message:    "Upload received. Generate the listing to continue.",
	})
}

// Generate handles POST /api/v1/listings/:id/generate
func (h *ListingHandler) Generate(c *gin.Context) {
	draft, err := h.onboarding.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Get handles GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	draft, err := h.onboarding.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Status handles GET /api/v1/listings/:id/status
func (h *ListingHandler) Status(c *gin.Context) {
	status, err := h.onboarding.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Publish handles POST /api/v1/listings/:id/publish
func (h *ListingHandler) Publish(c *gin.Context) {
	draft, err := h.onboarding.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// List handles GET /api/v1/listings
func (h *ListingHandler) List(c *gin.Context) {
	drafts, err := h.onboarding.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": drafts, "total": len(drafts)})
}
