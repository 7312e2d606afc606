package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"propertychat/internal/config"
)

func newTestOpenAIClient(t *testing.T, content string, status int) (*OpenAIClient, *ChatCompletionRequest) {
	t.Helper()
	var captured ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)

		if status != http.StatusOK {
			http.Error(w, "boom", status)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "cmpl-1",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(&config.OpenAIConfig{
		APIKey:    "test-key",
		APIBase:   srv.URL + "/",
		ChatModel: "test-model",
		Timeout:   5,
		Enabled:   true,
	})
	return client, &captured
}

func TestOpenAIClient_ExtractCriteria(t *testing.T) {
	client, captured := newTestOpenAIClient(t,
		"```json\n{\"location\": \"Palo Alto\", \"property_type\": \"House\", \"bedrooms\": 3, \"budget_max\": 1500000}\n```",
		http.StatusOK)

	got, err := client.ExtractCriteria(context.Background(), "3 bedroom house in Palo Alto under 1.5M")
	if err != nil {
		t.Fatalf("ExtractCriteria() error = %v", err)
	}

	if captured.Model != "test-model" {
		t.Errorf("Model = %q, want test-model", captured.Model)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Errorf("ResponseFormat = %+v", captured.ResponseFormat)
	}
	if len(captured.Messages) != 2 || captured.Messages[1].Content != "3 bedroom house in Palo Alto under 1.5M" {
		t.Errorf("Messages = %+v", captured.Messages)
	}

	criteria, _ := got.ToCriteria()
	if criteria.Location != "Palo Alto" || criteria.PropertyType != "house" {
		t.Errorf("criteria = %+v", criteria)
	}
	if criteria.Bedrooms == nil || *criteria.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v", criteria.Bedrooms)
	}
	if criteria.Budget == nil || criteria.Budget.Max != 1500000 || criteria.Budget.Min != 0 {
		t.Errorf("Budget = %+v", criteria.Budget)
	}
}

func TestOpenAIClient_Errors(t *testing.T) {
	t.Run("HTTP failure", func(t *testing.T) {
		client, _ := newTestOpenAIClient(t, "", http.StatusInternalServerError)
		if _, err := client.ExtractCriteria(context.Background(), "hi"); err == nil {
			t.Error("Expected error for 500 response")
		}
	})

	t.Run("Invalid answer", func(t *testing.T) {
		client, _ := newTestOpenAIClient(t, `{"property_type": "castle"}`, http.StatusOK)
		if _, err := client.ExtractCriteria(context.Background(), "a castle"); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		client := NewOpenAIClient(&config.OpenAIConfig{Timeout: 1})
		if client.IsEnabled() {
			t.Fatal("Client without key should be disabled")
		}
		if _, err := client.ExtractCriteria(context.Background(), "hi"); err == nil {
			t.Error("Expected error when disabled")
		}
	})
}

func TestValidateCriteriaResponse(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	s := func(v string) *string { return &v }

	tests := []struct {
		name    string
		resp    AICriteriaResponse
		wantErr bool
	}{
		{"Empty", AICriteriaResponse{}, false},
		{"Budget ordered", AICriteriaResponse{BudgetMin: f(1), BudgetMax: f(2)}, false},
		{"Budget inverted", AICriteriaResponse{BudgetMin: f(3), BudgetMax: f(2)}, true},
		{"Negative budget", AICriteriaResponse{BudgetMax: f(-1)}, true},
		{"Known type", AICriteriaResponse{PropertyType: s("Loft")}, false},
		{"Unknown type", AICriteriaResponse{PropertyType: s("castle")}, true},
		{"Too many bedrooms", AICriteriaResponse{Bedrooms: intPtr(11)}, true},
		{"Negative bathrooms", AICriteriaResponse{Bathrooms: intPtr(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCriteriaResponse(&tt.resp)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateCriteriaResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
