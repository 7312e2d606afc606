package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"propertychat/internal/config"
	"propertychat/internal/utils"
	"propertychat/pkg/log"
)

// OpenAIClient handles OpenAI-compatible API interactions
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
	extraBody  map[string]any
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	c := &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}

	if cfg.ChatExtraBody != "" {
		if err := json.Unmarshal([]byte(cfg.ChatExtraBody), &c.extraBody); err != nil {
			log.Warnf("Failed to parse OPENAI_CHAT_EXTRA_BODY: %v", err)
			c.extraBody = nil
		}
	}

	if cfg.Enabled {
		log.Infof("AI assistant enabled, model %s at %s", cfg.ChatModel, cfg.APIBase)
	}
	return c
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c != nil && c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	ExtraBody      map[string]any  `json:"extra_body,omitempty"`
}

// ChatMessage represents a single message in the completion prompt
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}
	if req.ExtraBody == nil {
		req.ExtraBody = c.extraBody
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.config.APIBase, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

const criteriaSystemPrompt = `You are a real estate search assistant in the San Francisco Bay Area. Parse the user's message into structured search criteria.

Extract the following information if present:
- location: city or neighborhood name (string)
- budget_min: minimum price in USD (number)
- budget_max: maximum price in USD (number)
- property_type: one of "house", "condo", "apartment", "townhouse", "studio", "loft" (string)
- bedrooms: minimum number of bedrooms (integer)
- bathrooms: minimum number of bathrooms (integer)
- features: array of must-have features (e.g., ["parking", "garden", "modern kitchen"])
- style: architectural style such as "modern" or "victorian" (string)
- amenities: array of building amenities (e.g., ["gym", "pool", "doorman"])

Important rules:
- Respond ONLY with valid JSON
- If a field is not mentioned, omit it
- For prices: "1.5M" = 1500000, "800K" = 800000

Examples:
Message: "3 bedroom house in Palo Alto under 1.5M"
Response: {"bedrooms": 3, "property_type": "house", "location": "Palo Alto", "budget_max": 1500000}

Message: "somewhere in SOMA with a doorman, nothing too old fashioned"
Response: {"location": "SOMA", "amenities": ["doorman"], "style": "modern"}`

// ExtractCriteria uses the chat model to parse a message into search criteria
func (c *OpenAIClient) ExtractCriteria(ctx context.Context, text string) (*AICriteriaResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}

	req := ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: criteriaSystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature:    0.3,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	result, err := parseCriteriaResponse(content)
	if err != nil {
		log.Warnw("Failed to parse AI response", "content", content, "error", err)
		return nil, err
	}
	return result, nil
}

// parseCriteriaResponse decodes and validates a model answer
func parseCriteriaResponse(content string) (*AICriteriaResponse, error) {
	var result AICriteriaResponse
	if err := utils.ParseAIJSON(content, &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	if err := validateCriteriaResponse(&result); err != nil {
		return nil, fmt.Errorf("AI response validation failed: %w", err)
	}
	return &result, nil
}

var validPropertyTypes = map[string]bool{
	"house": true, "condo": true, "apartment": true, "townhouse": true, "studio": true, "loft": true,
}

// validateCriteriaResponse validates the AI response using business rules
func validateCriteriaResponse(resp *AICriteriaResponse) error {
	if resp.BudgetMin != nil && resp.BudgetMax != nil && *resp.BudgetMin > *resp.BudgetMax {
		return fmt.Errorf("budget_min (%f) cannot be greater than budget_max (%f)", *resp.BudgetMin, *resp.BudgetMax)
	}
	if resp.BudgetMin != nil && *resp.BudgetMin < 0 || resp.BudgetMax != nil && *resp.BudgetMax < 0 {
		return fmt.Errorf("budget must not be negative")
	}

	if resp.PropertyType != nil {
		t := strings.ToLower(*resp.PropertyType)
		if !validPropertyTypes[t] {
			return fmt.Errorf("invalid property_type: %s", *resp.PropertyType)
		}
		resp.PropertyType = &t
	}

	if resp.Bedrooms != nil && (*resp.Bedrooms < 0 || *resp.Bedrooms > 10) {
		return fmt.Errorf("bedrooms must be between 0 and 10")
	}
	if resp.Bathrooms != nil && (*resp.Bathrooms < 0 || *resp.Bathrooms > 10) {
		return fmt.Errorf("bathrooms must be between 0 and 10")
	}

	return nil
}
