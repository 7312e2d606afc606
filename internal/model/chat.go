package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies who wrote a chat message
type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeAI   MessageType = "ai"
)

// Persona selects the pattern table a session talks to
type Persona string

const (
	PersonaCustomer Persona = "customer"
	PersonaSeller   Persona = "seller"
)

// Valid reports whether p is a known persona
func (p Persona) Valid() bool {
	return p == PersonaCustomer || p == PersonaSeller
}

// InitialIntent is the intent a fresh session of this persona expects first
func (p Persona) InitialIntent() string {
	if p == PersonaSeller {
		return "welcome"
	}
	return "greeting"
}

// ChatMessage is one entry of the conversation log. Messages are never edited after append.
type ChatMessage struct {
	ID          string      `json:"id"`
	Type        MessageType `json:"type"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
	Intent      string      `json:"intent,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	Actions     []string    `json:"actions,omitempty"`
}

// NewChatMessage stamps a message with a fresh id and the current time
func NewChatMessage(msgType MessageType, content string) ChatMessage {
	return ChatMessage{
		ID:        fmt.Sprintf("msg-%s", uuid.NewString()),
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// ChatState is everything a conversation accumulates. The mutators below are shallow merges:
// a later write for the same key overwrites the earlier one and nothing is validated.
type ChatState struct {
	SessionID       string           `json:"session_id"`
	Persona         Persona          `json:"persona"`
	Messages        []ChatMessage    `json:"messages"`
	IsTyping        bool             `json:"is_typing"`
	CurrentIntent   string           `json:"current_intent"`
	Criteria        *SearchCriteria  `json:"criteria,omitempty"`
	Preferences     *UserPreferences `json:"preferences,omitempty"`
	FormData        FormData         `json:"form_data,omitempty"`
	ReadyForResults bool             `json:"ready_for_results"`
	ResultIDs       []string         `json:"result_ids,omitempty"`
	Favorites       []string         `json:"favorites,omitempty"`
	ListingID       string           `json:"listing_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// NewChatState returns the initial state for a persona
func NewChatState(sessionID string, persona Persona) *ChatState {
	now := time.Now().UTC()
	return &ChatState{
		SessionID:     sessionID,
		Persona:       persona,
		Messages:      []ChatMessage{},
		CurrentIntent: persona.InitialIntent(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddMessage appends msg to the log. maxMessages > 0 trims the oldest entries.
func (s *ChatState) AddMessage(msg ChatMessage, maxMessages int) {
	s.Messages = append(s.Messages, msg)
	if maxMessages > 0 && len(s.Messages) > maxMessages {
		s.Messages = append([]ChatMessage(nil), s.Messages[len(s.Messages)-maxMessages:]...)
	}
	s.touch()
}

func (s *ChatState) SetTyping(typing bool) {
	s.IsTyping = typing
	s.touch()
}

func (s *ChatState) UpdateCriteria(partial SearchCriteria) {
	if s.Criteria == nil {
		s.Criteria = &SearchCriteria{}
	}
	s.Criteria.Merge(partial)
	s.touch()
}

func (s *ChatState) UpdatePreferences(partial UserPreferences) {
	if s.Preferences == nil {
		s.Preferences = &UserPreferences{}
	}
	s.Preferences.Merge(partial)
	s.touch()
}

func (s *ChatState) UpdateFormData(partial FormData) {
	if len(partial) == 0 {
		return
	}
	if s.FormData == nil {
		s.FormData = FormData{}
	}
	for k, v := range partial {
		s.FormData[k] = v
	}
	s.touch()
}

func (s *ChatState) SetReadyForResults(ready bool) {
	s.ReadyForResults = ready
	s.touch()
}

// SetResults records the ids of the last property result set, best first
func (s *ChatState) SetResults(ids []string) {
	s.ResultIDs = ids
	s.touch()
}

// ToggleFavorite adds or removes propertyID and reports whether it is now a favorite
func (s *ChatState) ToggleFavorite(propertyID string) bool {
	for i, id := range s.Favorites {
		if id == propertyID {
			s.Favorites = append(s.Favorites[:i:i], s.Favorites[i+1:]...)
			s.touch()
			return false
		}
	}
	s.Favorites = append(s.Favorites, propertyID)
	s.touch()
	return true
}

// Reset returns the session to its initial state, keeping id and persona
func (s *ChatState) Reset() {
	*s = *NewChatState(s.SessionID, s.Persona)
}

// LastMessage returns the newest message, if any
func (s *ChatState) LastMessage() (ChatMessage, bool) {
	if len(s.Messages) == 0 {
		return ChatMessage{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

func (s *ChatState) touch() {
	s.UpdatedAt = time.Now().UTC()
}
