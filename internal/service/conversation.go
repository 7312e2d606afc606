package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"propertychat/internal/flow"
	"propertychat/internal/model"
	"propertychat/internal/repository"
	"propertychat/pkg/log"
)

// ChatEventCallback is called for every streamed chat event
type ChatEventCallback func(event string, data any) error

// ConversationService drives chat sessions: match, extract, act, reply, persist
type ConversationService struct {
	sessions    repository.Store[model.ChatState]
	properties  *PropertyService
	onboarding  *OnboardingService
	matcher     *IntentMatcher
	responder   *ResponseGenerator
	slots       *SlotExtractor
	ai          AIClient
	maxMessages int
	locks       *sessionLocks
}

// NewConversationService creates a conversation service. ai may be nil.
func NewConversationService(
	sessions repository.Store[model.ChatState],
	properties *PropertyService,
	onboarding *OnboardingService,
	matcher *IntentMatcher,
	responder *ResponseGenerator,
	slots *SlotExtractor,
	ai AIClient,
	maxMessages int,
) *ConversationService {
	return &ConversationService{
		sessions:    sessions,
		properties:  properties,
		onboarding:  onboarding,
		matcher:     matcher,
		responder:   responder,
		slots:       slots,
		ai:          ai,
		maxMessages: maxMessages,
		locks:       newSessionLocks(),
	}
}

// Start opens a session for persona
func (s *ConversationService) Start(ctx context.Context, persona model.Persona) (*model.StartSessionResponse, error) {
	if !persona.Valid() {
		return nil, &ValidationError{Messages: []string{fmt.Sprintf("unknown persona %q, must be customer or seller", persona)}}
	}

	state := model.NewChatState("session-"+uuid.NewString(), persona)
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	log.Infow("Chat session started", "session_id", state.SessionID, "persona", persona)
	return &model.StartSessionResponse{
		State:       state,
		Suggestions: flow.ForPersona(persona).Opening,
	}, nil
}

// Get returns the current state of a session
func (s *ConversationService) Get(ctx context.Context, sessionID string) (*model.ChatState, error) {
	return s.load(ctx, sessionID)
}

// Send processes one user message and returns the AI turn it produced
func (s *ConversationService) Send(ctx context.Context, sessionID, text string) (*model.SendMessageResponse, error) {
	start := time.Now()
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Messages: []string{"message content is required"}}
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	table := flow.ForPersona(state.Persona)
	state.AddMessage(model.NewChatMessage(model.MessageTypeUser, text), s.maxMessages)

	match := s.matcher.Match(table, text)
	turn := &turn{state: state, match: match, text: text, vars: map[string]string{}}

	if state.Persona == model.PersonaSeller {
		state.UpdateFormData(s.slots.ExtractSeller(match, text))
	} else {
		s.applyCustomerSlots(ctx, turn)
	}

	if err := s.runActions(ctx, table, turn); err != nil {
		return nil, err
	}
	if err := s.fillVars(ctx, turn); err != nil {
		return nil, err
	}

	s.reply(turn, match.Entry)
	if turn.followUp != nil {
		s.reply(turn, *turn.followUp)
	}

	if !match.Fallback {
		state.CurrentIntent = match.Entry.NextIntent()
	}
	state.SetTyping(false)

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	log.Debugw("Chat turn",
		"session_id", sessionID,
		"intent", match.Intent,
		"keyword", match.Keyword,
		"fallback", match.Fallback,
		"results", len(turn.results),
	)

	return &model.SendMessageResponse{
		State:   state,
		Intent:  &match,
		Replies: turn.replies,
		Results: turn.results,
		Draft:   turn.draft,
		Took:    time.Since(start).Milliseconds(),
	}, nil
}

// SendStream processes a message like Send, emitting start, typing, intent, message,
// results and done events. delay simulates the assistant typing.
func (s *ConversationService) SendStream(
	ctx context.Context,
	sessionID, text string,
	delay time.Duration,
	callback ChatEventCallback,
) (*model.SendMessageResponse, error) {
	if err := callback("start", map[string]any{"session_id": sessionID}); err != nil {
		return nil, err
	}

	if _, err := s.SetTyping(ctx, sessionID, true); err != nil {
		return nil, err
	}
	if err := callback("typing", map[string]any{"is_typing": true}); err != nil {
		return nil, err
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			// the client is gone, leave the session usable
			_, _ = s.SetTyping(context.Background(), sessionID, false)
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	resp, err := s.Send(ctx, sessionID, text)
	if err != nil {
		_, _ = s.SetTyping(context.Background(), sessionID, false)
		return nil, err
	}

	if err := callback("intent", resp.Intent); err != nil {
		return nil, err
	}
	for _, msg := range resp.Replies {
		if err := callback("message", msg); err != nil {
			return nil, err
		}
	}
	if len(resp.Results) > 0 {
		if err := callback("results", resp.Results); err != nil {
			return nil, err
		}
	}
	if err := callback("done", map[string]any{"took_ms": resp.Took, "state": resp.State}); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateCriteria merges partial into the session criteria
func (s *ConversationService) UpdateCriteria(ctx context.Context, sessionID string, partial model.SearchCriteria) (*model.ChatState, error) {
	return s.mutate(ctx, sessionID, func(state *model.ChatState) {
		state.UpdateCriteria(partial)
	})
}

// UpdatePreferences merges partial into the session preferences
func (s *ConversationService) UpdatePreferences(ctx context.Context, sessionID string, partial model.UserPreferences) (*model.ChatState, error) {
	return s.mutate(ctx, sessionID, func(state *model.ChatState) {
		state.UpdatePreferences(partial)
	})
}

// SetTyping sets the typing indicator
func (s *ConversationService) SetTyping(ctx context.Context, sessionID string, typing bool) (*model.ChatState, error) {
	return s.mutate(ctx, sessionID, func(state *model.ChatState) {
		state.SetTyping(typing)
	})
}

// ToggleFavorite adds or removes a property from the session favorites
func (s *ConversationService) ToggleFavorite(ctx context.Context, sessionID, propertyID string) (*model.ChatState, bool, error) {
	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, false, err
	}

	var favorite bool
	state, err := s.mutate(ctx, sessionID, func(state *model.ChatState) {
		favorite = state.ToggleFavorite(propertyID)
	})
	if err != nil {
		return nil, false, err
	}

	if favorite {
		req := model.FeedbackRequest{SessionID: sessionID, PropertyID: propertyID, Action: "favorite"}
		if err := s.properties.LogFeedback(ctx, req); err != nil {
			log.Error("Failed to log favorite", err)
		}
	}
	return state, favorite, nil
}

// Reset returns a session to its initial state
func (s *ConversationService) Reset(ctx context.Context, sessionID string) (*model.ChatState, error) {
	return s.mutate(ctx, sessionID, func(state *model.ChatState) {
		state.Reset()
	})
}

func (s *ConversationService) mutate(ctx context.Context, sessionID string, fn func(*model.ChatState)) (*model.ChatState, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(state)
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *ConversationService) load(ctx context.Context, sessionID string) (*model.ChatState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

func (s *ConversationService) save(ctx context.Context, state *model.ChatState) error {
	if err := s.sessions.Save(ctx, state.SessionID, state); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// turn is the working set of one Send call
type turn struct {
	state       *model.ChatState
	match       model.IntentMatch
	text        string
	budgetLabel string
	vars        map[string]string
	followUp    *model.PatternEntry
	replies     []model.ChatMessage
	results     []model.PropertyResult
	draft       *model.ListingDraft
}

func (s *ConversationService) applyCustomerSlots(ctx context.Context, t *turn) {
	slots := s.slots.ExtractCustomer(t.match, t.text)
	t.budgetLabel = slots.BudgetLabel

	if t.match.Fallback && slots.Criteria.IsEmpty() && s.ai != nil && s.ai.IsEnabled() {
		resp, err := s.ai.ExtractCriteria(ctx, t.text)
		if err != nil {
			log.Warnw("AI criteria extraction failed", "session_id", t.state.SessionID, "error", err)
		} else {
			slots.Criteria, slots.Preferences = resp.ToCriteria()
		}
	}

	if !slots.Criteria.IsEmpty() {
		t.state.UpdateCriteria(slots.Criteria)
	}
	p := slots.Preferences
	if p.Style != "" || p.Neighborhood != "" || len(p.Amenities) > 0 || p.Priority != "" {
		t.state.UpdatePreferences(p)
	}
}

func (s *ConversationService) runActions(ctx context.Context, table *flow.Table, t *turn) error {
	entry := t.match.Entry
	state := t.state

	if entry.HasAction(flow.ActionSearchProperties) {
		var criteria model.SearchCriteria
		if state.Criteria != nil {
			criteria = *state.Criteria
		}
		results, err := s.properties.MatchCriteria(ctx, state.SessionID, t.text, criteria, state.Preferences)
		if err != nil {
			return err
		}
		t.results = results
		state.SetResults(resultIDs(results))
		t.vars["count"] = strconv.Itoa(len(results))
		t.setFollowUp(table)
	}

	if entry.HasAction(flow.ActionNavigateToResults) {
		state.SetReadyForResults(true)
	}

	if (entry.HasAction(flow.ActionUpdatePreferences) || entry.HasAction(flow.ActionReorderResults)) && len(state.ResultIDs) > 0 {
		results, err := s.properties.Rerank(ctx, state.ResultIDs, state.Criteria, state.Preferences)
		if err != nil {
			return err
		}
		t.results = results
		state.SetResults(resultIDs(results))
	}

	if entry.HasAction(flow.ActionGenerateListing) || entry.HasAction(flow.ActionCreateForm) {
		draft, err := s.onboarding.CreateFromForm(ctx, state.SessionID, state.FormData)
		if err != nil {
			return err
		}
		t.draft = draft
		state.ListingID = draft.ID
		t.setFollowUp(table)
	}

	if entry.HasAction(flow.ActionMarketInsights) {
		bedrooms, _ := strconv.Atoi(state.FormData[model.FieldBedrooms])
		comps, err := s.properties.Comparables(ctx, state.FormData[model.FieldPropertyType], bedrooms)
		if err != nil {
			return err
		}
		for k, v := range MarketAdviceVars(state.FormData, comps) {
			t.vars[k] = v
		}
	}
	return nil
}

// setFollowUp queues the entry's follow-up reply when the table has one
func (t *turn) setFollowUp(table *flow.Table) {
	if next, ok := table.Entry(t.match.Entry.FollowUp); ok {
		t.followUp = &next
	}
}

// fillVars derives template values from the session. Keys already set by actions win.
func (s *ConversationService) fillVars(ctx context.Context, t *turn) error {
	var derived map[string]string
	if t.state.Persona == model.PersonaSeller {
		derived = sellerVars(t.state.FormData)
	} else {
		var err error
		derived, err = s.customerVars(ctx, t)
		if err != nil {
			return err
		}
	}
	for k, v := range derived {
		if _, ok := t.vars[k]; !ok && v != "" {
			t.vars[k] = v
		}
	}
	return nil
}

func (s *ConversationService) customerVars(ctx context.Context, t *turn) (map[string]string, error) {
	state := t.state
	vars := map[string]string{}

	if c := state.Criteria; c != nil {
		vars["property_type"] = c.PropertyType
		vars["budget"] = firstNonEmpty(t.budgetLabel, budgetLabel(c.Budget))
		if c.Bedrooms != nil {
			vars["bedrooms"] = plural(*c.Bedrooms, "bedroom")
		}
		if c.Bathrooms != nil {
			vars["bathrooms"] = plural(*c.Bathrooms, "bathroom")
		}
		vars["location"] = c.Location
		vars["features"] = strings.Join(c.Features, ", ")
	}

	if p := state.Preferences; p != nil {
		vars["style"] = p.Style
		if vars["location"] == "" {
			vars["location"] = p.Neighborhood
		}
		if len(p.Amenities) > 0 {
			vars["amenity"] = titleCase(p.Amenities[0])
		}
	}
	if t.match.Intent == "amenity_focus" {
		vars["amenity"] = titleCase(t.match.Keyword)
	}

	if len(state.ResultIDs) > 0 {
		top, err := s.properties.Get(ctx, state.ResultIDs[0])
		switch {
		case err == nil && top.AIRanking != nil:
			vars["ranking_factors"] = joinFactors(top.AIRanking.Factors)
		case err != nil && !errors.Is(err, ErrPropertyNotFound):
			return nil, err
		}
	}
	return vars, nil
}

func sellerVars(form model.FormData) map[string]string {
	vars := map[string]string{
		"propertyType": strings.ToLower(form[model.FieldPropertyType]),
		"address":      form[model.FieldAddress],
		"bedrooms":     form[model.FieldBedrooms],
		"bathrooms":    form[model.FieldBathrooms],
		"features":     form[model.FieldFeatures],
		"neighborhood": form[model.FieldNeighborhood],
	}
	if v, err := strconv.ParseFloat(form[model.FieldSqft], 64); err == nil {
		vars["sqft"] = FormatThousands(v)
	}
	if v, err := strconv.ParseFloat(form[model.FieldPrice], 64); err == nil {
		vars["price"] = FormatThousands(v)
	}
	return vars
}

// reply renders entry and appends it to the session as an AI message
func (s *ConversationService) reply(t *turn, entry model.PatternEntry) {
	r := s.responder.Generate(entry, t.vars)
	if r.Content == "" {
		return
	}
	msg := model.NewChatMessage(model.MessageTypeAI, r.Content)
	msg.Intent = entry.Intent
	msg.Suggestions = r.QuickReplies
	msg.Actions = entry.Actions

	t.state.AddMessage(msg, s.maxMessages)
	t.replies = append(t.replies, msg)
}

func budgetLabel(b *model.BudgetRange) string {
	switch {
	case b == nil:
		return ""
	case b.Min > 0 && b.Max > 0:
		return FormatMoney(b.Min) + " - " + FormatMoney(b.Max)
	case b.Min > 0:
		return "over " + FormatMoney(b.Min)
	case b.Max > 0:
		return "under " + FormatMoney(b.Max)
	}
	return ""
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// joinFactors renders ["Great location", "Modern"] as "great location and modern"
func joinFactors(factors []string) string {
	lower := make([]string, len(factors))
	for i, f := range factors {
		lower[i] = strings.ToLower(f)
	}
	switch len(lower) {
	case 0:
		return ""
	case 1:
		return lower[0]
	}
	return strings.Join(lower[:len(lower)-1], ", ") + " and " + lower[len(lower)-1]
}
