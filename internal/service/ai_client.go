package service

import (
	"context"

	"propertychat/internal/model"
)

// AIClient extracts search criteria from messages the pattern tables could not place
type AIClient interface {
	// ExtractCriteria parses a free-form message into structured criteria (JSON mode, non-streaming)
	ExtractCriteria(ctx context.Context, text string) (*AICriteriaResponse, error)

	// IsEnabled returns whether the AI client is configured and ready
	IsEnabled() bool
}

// AICriteriaResponse represents the criteria parsed by the AI
type AICriteriaResponse struct {
	Location     *string  `json:"location,omitempty"`
	BudgetMin    *float64 `json:"budget_min,omitempty"`
	BudgetMax    *float64 `json:"budget_max,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	Features     []string `json:"features,omitempty"`
	Style        *string  `json:"style,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
}

// ToCriteria converts the AI answer into partial criteria and preferences
func (r *AICriteriaResponse) ToCriteria() (model.SearchCriteria, model.UserPreferences) {
	var c model.SearchCriteria
	var p model.UserPreferences

	if r.Location != nil {
		c.Location = *r.Location
	}
	if r.BudgetMin != nil || r.BudgetMax != nil {
		b := &model.BudgetRange{}
		if r.BudgetMin != nil {
			b.Min = *r.BudgetMin
		}
		if r.BudgetMax != nil {
			b.Max = *r.BudgetMax
		}
		c.Budget = b
	}
	if r.PropertyType != nil {
		c.PropertyType = *r.PropertyType
	}
	c.Bedrooms = r.Bedrooms
	c.Bathrooms = r.Bathrooms
	c.Features = r.Features

	if r.Style != nil {
		p.Style = *r.Style
	}
	p.Amenities = r.Amenities
	return c, p
}

// Ensure OpenAIClient implements AIClient
var _ AIClient = (*OpenAIClient)(nil)
