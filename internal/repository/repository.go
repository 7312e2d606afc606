// Package repository provides the storage layer for sessions, drafts, the property catalog and the event log.
package repository

import (
	"context"

	"propertychat/internal/model"
)

// Store keeps JSON-serialisable values by key. Get returns nil, nil for a missing key.
type Store[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Save(ctx context.Context, key string, value *T) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*T, error)
}

// PropertyRepository is the property catalog. Get returns nil, nil for an unknown id.
type PropertyRepository interface {
	List(ctx context.Context) ([]model.Property, error)
	Get(ctx context.Context, id string) (*model.Property, error)
	Similar(ctx context.Context, id string, limit int) ([]model.Property, error)
	UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string)
	SaveListing(ctx context.Context, p model.Property) error
}

// SearchLogEntry is one chat-driven catalog search
type SearchLogEntry struct {
	SessionID      string
	Query          string
	Criteria       model.SearchCriteria
	ResultCount    int
	PropertyIDs    []string
	ResponseTimeMs int
}

// EventLog records searches and property feedback
type EventLog interface {
	LogSearch(ctx context.Context, entry SearchLogEntry) error
	LogFeedback(ctx context.Context, sessionID, propertyID, action string) error
}
