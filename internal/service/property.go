package service

import (
	"context"
	"fmt"
	"time"

	"propertychat/internal/config"
	"propertychat/internal/model"
	"propertychat/internal/repository"
	"propertychat/pkg/log"
)

// PropertyService handles catalog search, filtering and ranking
type PropertyService struct {
	repo   repository.PropertyRepository
	events repository.EventLog
	ranker *Ranker
	limits config.SearchConfig
}

// NewPropertyService creates a new property service
func NewPropertyService(
	repo repository.PropertyRepository,
	events repository.EventLog,
	ranker *Ranker,
	limits config.SearchConfig,
) *PropertyService {
	return &PropertyService{
		repo:   repo,
		events: events,
		ranker: ranker,
		limits: limits,
	}
}

// Search returns properties mentioning any term of query. A blank query lists the catalog.
func (s *PropertyService) Search(ctx context.Context, query string, limit int) (*model.PropertyListResponse, error) {
	start := time.Now()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matches := SearchProperties(all, query)
	return s.respond(matches, nil, nil, limit, start), nil
}

// Filter applies the manual filter panel
func (s *PropertyService) Filter(ctx context.Context, filter model.PropertyFilter, limit int) (*model.PropertyListResponse, error) {
	start := time.Now()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	matches := FilterProperties(all, filter)
	return s.respond(matches, &filter, nil, limit, start), nil
}

func (s *PropertyService) respond(
	matches []model.Property,
	filter *model.PropertyFilter,
	prefs *model.UserPreferences,
	limit int,
	start time.Time,
) *model.PropertyListResponse {
	results := s.ranker.RankResults(matches, filter, prefs)
	total := len(results)
	if n := s.clampLimit(limit); len(results) > n {
		results = results[:n]
	}
	return &model.PropertyListResponse{
		Results: results,
		Total:   total,
		Took:    time.Since(start).Milliseconds(),
	}
}

// MatchCriteria runs a chat search: filter by collected criteria, rank with preferences,
// and record the search
func (s *PropertyService) MatchCriteria(
	ctx context.Context,
	sessionID, query string,
	criteria model.SearchCriteria,
	prefs *model.UserPreferences,
) ([]model.PropertyResult, error) {
	start := time.Now()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	filter := criteria.ToFilter()
	results := s.ranker.RankResults(FilterProperties(all, filter), &filter, prefs)
	took := time.Since(start)

	ids := resultIDs(results)
	// Log search (non-blocking)
	go func() {
		entry := repository.SearchLogEntry{
			SessionID:      sessionID,
			Query:          query,
			Criteria:       criteria,
			ResultCount:    len(ids),
			PropertyIDs:    ids,
			ResponseTimeMs: int(took.Milliseconds()),
		}
		if err := s.events.LogSearch(context.Background(), entry); err != nil {
			log.Error("Failed to log search", err)
		}
	}()

	return results, nil
}

// Rerank loads the properties behind ids and orders them by match score plus preference bonus.
// Ids no longer in the catalog are dropped.
func (s *PropertyService) Rerank(
	ctx context.Context,
	ids []string,
	criteria *model.SearchCriteria,
	prefs *model.UserPreferences,
) ([]model.PropertyResult, error) {
	props := make([]model.Property, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load property %s: %w", id, err)
		}
		if p != nil {
			props = append(props, *p)
		}
	}

	var filter *model.PropertyFilter
	if criteria != nil {
		f := criteria.ToFilter()
		filter = &f
	}
	return s.ranker.RankResults(props, filter, prefs), nil
}

// Comparables returns catalog properties priced like the one described
func (s *PropertyService) Comparables(ctx context.Context, propertyType string, bedrooms int) ([]model.Property, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return FindComparables(all, propertyType, bedrooms), nil
}

// Get retrieves a single property by ID
func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

// Similar returns properties like id, closest first
func (s *PropertyService) Similar(ctx context.Context, id string, limit int) ([]model.Property, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.limits.SimilarLimit
	}
	props, err := s.repo.Similar(ctx, id, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to find similar properties: %w", err)
	}
	return props, nil
}

// UpdateEmbeddings updates embeddings for multiple properties
func (s *PropertyService) UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	return s.repo.UpdateEmbeddings(ctx, items)
}

// LogFeedback logs user feedback/action on a known property
func (s *PropertyService) LogFeedback(ctx context.Context, req model.FeedbackRequest) error {
	if _, err := s.Get(ctx, req.PropertyID); err != nil {
		return err
	}
	return s.events.LogFeedback(ctx, req.SessionID, req.PropertyID, req.Action)
}

func (s *PropertyService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.limits.DefaultLimit
	}
	if limit > s.limits.MaxLimit {
		return s.limits.MaxLimit
	}
	return limit
}

func resultIDs(results []model.PropertyResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}
