package model

// StartSessionRequest opens a conversation
type StartSessionRequest struct {
	Persona Persona `json:"persona" binding:"required,oneof=customer seller"`
}

// StartSessionResponse carries the new state plus the opening suggestions
type StartSessionResponse struct {
	State       *ChatState `json:"state"`
	Suggestions []string   `json:"suggestions"`
}

// SendMessageRequest is one user turn
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessageResponse is the outcome of one user turn
type SendMessageResponse struct {
	State   *ChatState       `json:"state"`
	Intent  *IntentMatch     `json:"intent"`
	Replies []ChatMessage    `json:"replies"`
	Results []PropertyResult `json:"results,omitempty"`
	Draft   *ListingDraft    `json:"draft,omitempty"`
	Took    int64            `json:"took_ms"`
}

// FilterRequest applies the manual filter panel
type FilterRequest struct {
	Filters PropertyFilter `json:"filters"`
	Limit   int            `json:"limit"`
}

// PropertyListResponse is a list of ranked properties
type PropertyListResponse struct {
	Results []PropertyResult `json:"results"`
	Total   int              `json:"total"`
	Took    int64            `json:"took_ms"`
}

// EmbeddingBatchRequest represents a batch embedding update request
type EmbeddingBatchRequest struct {
	Embeddings []EmbeddingItem `json:"embeddings" binding:"required"`
}

// EmbeddingItem is one property embedding
type EmbeddingItem struct {
	PropertyID string    `json:"property_id" binding:"required"`
	Embedding  []float32 `json:"embedding" binding:"required"`
	Text       string    `json:"text,omitempty"` // the text the embedding was generated from
}

// EmbeddingBatchResponse represents the response for batch embedding update
type EmbeddingBatchResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// FeedbackRequest represents user feedback on a property
type FeedbackRequest struct {
	SessionID  string `json:"session_id"`
	PropertyID string `json:"property_id" binding:"required"`
	Action     string `json:"action" binding:"required,oneof=click contact view_details favorite"`
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListingUploadRequest starts the seller wizard
type ListingUploadRequest struct {
	Images      []string `json:"images"`
	Description string   `json:"description"`
	UserPrompt  string   `json:"user_prompt,omitempty"`
}

// ListingUploadResponse is returned once the upload passed validation
type ListingUploadResponse struct {
	PropertyID string `json:"property_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// ListingStatus summarises a draft
type ListingStatus struct {
	PropertyID        string         `json:"property_id"`
	Status            OnboardingStep `json:"status"`
	UploadedAt        string         `json:"uploaded_at"`
	ImagesCount       int            `json:"images_count"`
	DescriptionLength int            `json:"description_length"`
	Processed         bool           `json:"processed"`
}
