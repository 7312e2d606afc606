package handler

import "github.com/gin-gonic/gin"

// Handlers groups every API handler for route registration
type Handlers struct {
	Chat       *ChatHandler
	Properties *PropertyHandler
	Listings   *ListingHandler
	Feedback   *FeedbackHandler
}

// RegisterRoutes mounts the API under api
func RegisterRoutes(api *gin.RouterGroup, h Handlers) {
	chat := api.Group("/chat/sessions")
	{
		chat.POST("", h.Chat.Start)
		chat.GET("/:id", h.Chat.Get)
		chat.DELETE("/:id", h.Chat.Reset)
		chat.POST("/:id/messages", h.Chat.Send)
		chat.POST("/:id/messages/stream", h.Chat.SendStream)
		chat.PATCH("/:id/criteria", h.Chat.UpdateCriteria)
		chat.PATCH("/:id/preferences", h.Chat.UpdatePreferences)
		chat.POST("/:id/favorites/:propertyId", h.Chat.ToggleFavorite)
	}

	properties := api.Group("/properties")
	{
		properties.GET("", h.Properties.Search)
		properties.POST("/filter", h.Properties.Filter)
		properties.POST("/embeddings/batch", h.Properties.BatchUpdateEmbeddings)
		properties.GET("/:id", h.Properties.Get)
		properties.GET("/:id/similar", h.Properties.Similar)
	}

	listings := api.Group("/listings")
	{
		listings.GET("", h.Listings.List)
		listings.POST("/upload", h.Listings.Upload)
		listings.GET("/:id", h.Listings.Get)
		listings.GET("/:id/status", h.Listings.Status)
		listings.POST("/:id/generate", h.Listings.Generate)
		listings.POST("/:id/publish", h.Listings.Publish)
	}

	api.POST("/feedback", h.Feedback.Submit)
}
