package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"propertychat/internal/config"
	"propertychat/internal/model"
	"propertychat/internal/repository"
	"propertychat/internal/service"
)

const testEmbeddingDim = 4

var pngImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString(
	[]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00"))

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := repository.NewMemoryPropertyRepository(repository.DemoProperties())
	properties := service.NewPropertyService(
		catalog,
		repository.LogEventLog{},
		service.NewRanker(5, 3, 3),
		config.SearchConfig{DefaultLimit: 10, MaxLimit: 20, SimilarLimit: 3},
	)
	onboarding := service.NewOnboardingService(
		repository.NewMemoryStore[model.ListingDraft](0),
		catalog,
		config.ListingConfig{MaxImages: 5, MaxImageBytes: 1 << 20, MinDescriptionLen: 10},
	)
	chat := service.NewConversationService(
		repository.NewMemoryStore[model.ChatState](0),
		properties,
		onboarding,
		service.NewIntentMatcher(),
		service.NewResponseGenerator(service.SelectFirst),
		service.NewSlotExtractor(),
		nil,
		0,
	)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), Handlers{
		Chat:       NewChatHandler(chat, 0),
		Properties: NewPropertyHandler(properties, testEmbeddingDim),
		Listings:   NewListingHandler(onboarding),
		Feedback:   NewFeedbackHandler(properties),
	})
	return r
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func startChat(t *testing.T, r http.Handler, persona string) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/v1/chat/sessions", gin.H{"persona": persona})
	if w.Code != http.StatusCreated {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	return decode[model.StartSessionResponse](t, w).State.SessionID
}

func TestChatHandler_Sessions(t *testing.T) {
	r := newTestRouter()
	id := startChat(t, r, "customer")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"Unknown persona", http.MethodPost, "/api/v1/chat/sessions", gin.H{"persona": "landlord"}, http.StatusBadRequest},
		{"Get", http.MethodGet, "/api/v1/chat/sessions/" + id, nil, http.StatusOK},
		{"Get missing", http.MethodGet, "/api/v1/chat/sessions/session-missing", nil, http.StatusNotFound},
		{"Send blank", http.MethodPost, "/api/v1/chat/sessions/" + id + "/messages", gin.H{"content": ""}, http.StatusBadRequest},
		{"Send whitespace", http.MethodPost, "/api/v1/chat/sessions/" + id + "/messages", gin.H{"content": "   "}, http.StatusBadRequest},
		{"Send missing session", http.MethodPost, "/api/v1/chat/sessions/nope/messages", gin.H{"content": "hi"}, http.StatusNotFound},
		{"Favorite unknown property", http.MethodPost, "/api/v1/chat/sessions/" + id + "/favorites/nope", nil, http.StatusNotFound},
		{"Favorite", http.MethodPost, "/api/v1/chat/sessions/" + id + "/favorites/prop-001", nil, http.StatusOK},
		{"Criteria", http.MethodPatch, "/api/v1/chat/sessions/" + id + "/criteria", gin.H{"location": "Palo Alto"}, http.StatusOK},
		{"Preferences", http.MethodPatch, "/api/v1/chat/sessions/" + id + "/preferences", gin.H{"style": "modern"}, http.StatusOK},
		{"Reset", http.MethodDelete, "/api/v1/chat/sessions/" + id, nil, http.StatusOK},
		{"Reset missing", http.MethodDelete, "/api/v1/chat/sessions/nope", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
			if w.Code >= 400 {
				body := decode[map[string]any](t, w)
				if _, ok := body["error"]; !ok {
					t.Errorf("error body = %v", body)
				}
			}
		})
	}
}

func TestChatHandler_Send(t *testing.T) {
	r := newTestRouter()
	id := startChat(t, r, "customer")

	w := doRequest(r, http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages", gin.H{"content": "I want a house"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	resp := decode[model.SendMessageResponse](t, w)
	if resp.Intent == nil || resp.Intent.Intent != "property_type" {
		t.Errorf("Intent = %+v", resp.Intent)
	}
	if len(resp.Replies) != 1 || !strings.Contains(resp.Replies[0].Content, "house can be wonderful") {
		t.Errorf("Replies = %+v", resp.Replies)
	}
	if len(resp.State.Messages) != 2 || resp.State.CurrentIntent != "location" {
		t.Errorf("State = %+v", resp.State)
	}
}

func TestChatHandler_SendStream(t *testing.T) {
	r := newTestRouter()
	id := startChat(t, r, "customer")

	w := doRequest(r, http.MethodPost, "/api/v1/chat/sessions/"+id+"/messages/stream", gin.H{"content": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	last := -1
	for _, event := range []string{"start", "typing", "intent", "message", "done"} {
		i := strings.Index(body, "event: "+event+"\n")
		if i < 0 || i < last {
			t.Fatalf("event %s missing or out of order in %s", event, body)
		}
		last = i
	}

	t.Run("Unknown session is a plain 404", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/chat/sessions/nope/messages/stream", gin.H{"content": "hello"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestPropertyHandler(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"Search", http.MethodGet, "/api/v1/properties?q=condo", nil, http.StatusOK},
		{"Search bad limit", http.MethodGet, "/api/v1/properties?limit=abc", nil, http.StatusBadRequest},
		{"Filter", http.MethodPost, "/api/v1/properties/filter", gin.H{"filters": gin.H{"bedrooms": 4}}, http.StatusOK},
		{"Get", http.MethodGet, "/api/v1/properties/prop-001", nil, http.StatusOK},
		{"Get missing", http.MethodGet, "/api/v1/properties/nope", nil, http.StatusNotFound},
		{"Similar", http.MethodGet, "/api/v1/properties/prop-001/similar?limit=2", nil, http.StatusOK},
		{"Similar missing", http.MethodGet, "/api/v1/properties/nope/similar", nil, http.StatusNotFound},
		{"Embeddings empty", http.MethodPost, "/api/v1/properties/embeddings/batch", gin.H{"embeddings": []any{}}, http.StatusBadRequest},
		{"Embeddings wrong dimension", http.MethodPost, "/api/v1/properties/embeddings/batch",
			gin.H{"embeddings": []gin.H{{"property_id": "prop-001", "embedding": []float32{1, 2}}}}, http.StatusBadRequest},
		{"Embeddings", http.MethodPost, "/api/v1/properties/embeddings/batch",
			gin.H{"embeddings": []gin.H{{"property_id": "prop-001", "embedding": []float32{1, 0, 0, 0}}}}, http.StatusOK},
		{"Embeddings partial", http.MethodPost, "/api/v1/properties/embeddings/batch",
			gin.H{"embeddings": []gin.H{{"property_id": "nope", "embedding": []float32{1, 0, 0, 0}}}}, http.StatusPartialContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
		})
	}

	t.Run("Search results", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/properties?q=palo+alto", nil)
		resp := decode[model.PropertyListResponse](t, w)
		if resp.Total != 1 || resp.Results[0].ID != "prop-005" {
			t.Errorf("resp = %+v", resp)
		}
	})
}

func TestListingHandler_Lifecycle(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/v1/listings/upload", gin.H{"images": []string{}, "description": "short"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid upload status = %d", w.Code)
	}
	verr := decode[struct {
		Details []string `json:"details"`
	}](t, w)
	if len(verr.Details) != 2 {
		t.Errorf("details = %v", verr.Details)
	}

	w = doRequest(r, http.MethodPost, "/api/v1/listings/upload", gin.H{
		"images":      []string{pngImage},
		"description": "A sunny 2 bedroom condo with parking near the park.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", w.Code, w.Body.String())
	}
	id := decode[model.ListingUploadResponse](t, w).PropertyID

	steps := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"Publish before generate", http.MethodPost, "/api/v1/listings/" + id + "/publish", http.StatusConflict},
		{"Status", http.MethodGet, "/api/v1/listings/" + id + "/status", http.StatusOK},
		{"Generate", http.MethodPost, "/api/v1/listings/" + id + "/generate", http.StatusOK},
		{"Get", http.MethodGet, "/api/v1/listings/" + id, http.StatusOK},
		{"Publish", http.MethodPost, "/api/v1/listings/" + id + "/publish", http.StatusOK},
		{"Generate after publish", http.MethodPost, "/api/v1/listings/" + id + "/generate", http.StatusConflict},
		{"Get missing", http.MethodGet, "/api/v1/listings/nope", http.StatusNotFound},
		{"List", http.MethodGet, "/api/v1/listings", http.StatusOK},
	}

	for _, s := range steps {
		w := doRequest(r, s.method, s.path, nil)
		if w.Code != s.status {
			t.Fatalf("%s: status = %d, want %d, body = %s", s.name, w.Code, s.status, w.Body.String())
		}
	}

	draft := decode[model.ListingDraft](t, doRequest(r, http.MethodGet, "/api/v1/listings/"+id, nil))
	if draft.Step != model.StepCompleted || draft.PublishedID == "" {
		t.Fatalf("draft = %+v", draft)
	}
	w = doRequest(r, http.MethodGet, "/api/v1/properties/"+draft.PublishedID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("published listing not in catalog: %d", w.Code)
	}
}

func TestFeedbackHandler(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Valid", gin.H{"session_id": "s1", "property_id": "prop-001", "action": "click"}, http.StatusOK},
		{"Invalid action", gin.H{"property_id": "prop-001", "action": "like"}, http.StatusBadRequest},
		{"Missing property id", gin.H{"action": "click"}, http.StatusBadRequest},
		{"Unknown property", gin.H{"property_id": "nope", "action": "contact"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/feedback", tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
		})
	}
}
