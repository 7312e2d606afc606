package model

import "time"

// OnboardingStep is where a seller listing draft is in the wizard
type OnboardingStep string

const (
	StepUpload     OnboardingStep = "upload"
	StepProcessing OnboardingStep = "processing"
	StepReview     OnboardingStep = "review"
	StepCompleted  OnboardingStep = "completed"
)

// ListingDraft is a seller listing being built, either by upload or by the seller chat
type ListingDraft struct {
	ID          string            `json:"id"`
	Step        OnboardingStep    `json:"step"`
	Images      []string          `json:"images"` // data URLs
	Description string            `json:"description"`
	UserPrompt  string            `json:"user_prompt,omitempty"`
	FormData    FormData          `json:"form_data,omitempty"`
	SessionID   string            `json:"session_id,omitempty"`
	Generated   *GeneratedListing `json:"generated,omitempty"`
	PublishedID string            `json:"published_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// GeneratedListing is the listing proposed to the seller for review
type GeneratedListing struct {
	Property        Property        `json:"property"`
	ConfidenceScore float64         `json:"confidence_score"`
	Suggestions     []string        `json:"ai_suggestions"`
	PricingAnalysis PricingAnalysis `json:"pricing_analysis"`
	ProcessingTime  float64         `json:"processing_time"`
	Recommendations []string        `json:"recommendations"`
}

// MarketPosition compares an asking price to comparables
type MarketPosition string

const (
	MarketCompetitive MarketPosition = "competitive"
	MarketBelow       MarketPosition = "below_market"
	MarketAbove       MarketPosition = "above_market"
)

// ComparableStats summarises catalog prices for similar properties
type ComparableStats struct {
	AvgPrice   float64 `json:"avg_price"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	SampleSize int     `json:"sample_size"`
}

// PricingAnalysis is the market read-out attached to a generated listing
type PricingAnalysis struct {
	MarketPosition            MarketPosition  `json:"market_position"`
	Confidence                float64         `json:"confidence"`
	PriceDifferencePercentage float64         `json:"price_difference_percentage"`
	Comparables               ComparableStats `json:"comparable_properties"`
	Recommendations           []string        `json:"recommendations"`
	MarketInsights            []string        `json:"market_insights"`
}
