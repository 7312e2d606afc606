package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"propertychat/internal/model"
	"propertychat/pkg/log"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is the in-process Store. Values are kept as JSON so callers never share memory with it.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates a store. A zero ttl keeps values forever.
func NewMemoryStore[T any](ttl time.Duration) *MemoryStore[T] {
	return &MemoryStore[T]{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore[T]) Get(_ context.Context, key string) (*T, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.expired(item) {
		s.mu.Lock()
		// a Save may have refreshed the key since the read
		if cur, ok := s.items[key]; ok && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(item.data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return &v, nil
}

func (s *MemoryStore[T]) Save(_ context.Context, key string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	item := memoryItem{data: data}
	if s.ttl > 0 {
		item.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.items[key] = item
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// List returns live values ordered by key
func (s *MemoryStore[T]) List(_ context.Context) ([]*T, error) {
	s.mu.Lock()
	keys := make([]string, 0, len(s.items))
	for k, item := range s.items {
		if s.expired(item) {
			delete(s.items, k)
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		var v T
		if err := json.Unmarshal(s.items[k].data, &v); err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("failed to unmarshal %s: %w", k, err)
		}
		out = append(out, &v)
	}
	s.mu.Unlock()
	return out, nil
}

func (s *MemoryStore[T]) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && s.now().After(item.expiresAt)
}

// MemoryPropertyRepository is a catalog held in process memory
type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties []model.Property
	embeddings map[string][]float32
}

// NewMemoryPropertyRepository creates a catalog holding a copy of properties
func NewMemoryPropertyRepository(properties []model.Property) *MemoryPropertyRepository {
	return &MemoryPropertyRepository{
		properties: append([]model.Property(nil), properties...),
		embeddings: make(map[string][]float32),
	}
}

func (r *MemoryPropertyRepository) List(_ context.Context) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Property(nil), r.properties...), nil
}

func (r *MemoryPropertyRepository) Get(_ context.Context, id string) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.properties {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Similar ranks by cosine similarity when embeddings are loaded, otherwise returns
// properties of the same type closest in price
func (r *MemoryPropertyRepository) Similar(_ context.Context, id string, limit int) ([]model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var target *model.Property
	for i := range r.properties {
		if r.properties[i].ID == id {
			target = &r.properties[i]
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	type scored struct {
		p     model.Property
		score float64
	}
	var candidates []scored
	targetVec, hasVec := r.embeddings[id]

	for _, p := range r.properties {
		if p.ID == id {
			continue
		}
		if vec, ok := r.embeddings[p.ID]; hasVec && ok {
			candidates = append(candidates, scored{p: p, score: cosine(targetVec, vec)})
			continue
		}
		if hasVec || !strings.EqualFold(p.Details.Type, target.Details.Type) {
			continue
		}
		diff := p.Price - target.Price
		if diff < 0 {
			diff = -diff
		}
		candidates = append(candidates, scored{p: p, score: -diff})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]model.Property, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.p)
	}
	return out, nil
}

func (r *MemoryPropertyRepository) UpdateEmbeddings(_ context.Context, items []model.EmbeddingItem) (int, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	known := make(map[string]bool, len(r.properties))
	for _, p := range r.properties {
		known[p.ID] = true
	}

	success := 0
	var errs []string
	for _, item := range items {
		if !known[item.PropertyID] {
			errs = append(errs, fmt.Sprintf("property_id %s: not found", item.PropertyID))
			continue
		}
		r.embeddings[item.PropertyID] = append([]float32(nil), item.Embedding...)
		success++
	}
	return success, errs
}

// SaveListing inserts or replaces a property by id
func (r *MemoryPropertyRepository) SaveListing(_ context.Context, p model.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.properties {
		if r.properties[i].ID == p.ID {
			r.properties[i] = p
			return nil
		}
	}
	r.properties = append(r.properties, p)
	return nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// LogEventLog writes events as structured log lines when no database is configured
type LogEventLog struct{}

func (LogEventLog) LogSearch(_ context.Context, e SearchLogEntry) error {
	log.Infow("chat search",
		"session_id", e.SessionID,
		"query", e.Query,
		"criteria", e.Criteria,
		"result_count", e.ResultCount,
		"property_ids", e.PropertyIDs,
		"response_time_ms", e.ResponseTimeMs,
	)
	return nil
}

func (LogEventLog) LogFeedback(_ context.Context, sessionID, propertyID, action string) error {
	log.Infow("property feedback", "session_id", sessionID, "property_id", propertyID, "action", action)
	return nil
}
