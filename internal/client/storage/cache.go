package storage

import (
	"context"

	"github.com/flightbase/flightbase/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CachedEntity is a locally cached copy of a server row. Snapshot holds
// the row fields the way the server last returned them, including the
// "id" and "updated_at" keys.
type CachedEntity struct {
	Snapshot map[string]any    `json:"snapshot"`
	ID       string            `json:"id"`
	Kind     models.EntityKind `json:"kind"`
}

// CacheStorage defines interface for the read-through entity cache.
// Reads served from this cache may be stale while offline.
type CacheStorage interface {
	// SaveEntity stores or replaces a cached entity snapshot
	SaveEntity(ctx context.Context, entity *CachedEntity) error

	// GetEntity retrieves a cached entity by kind and id
	// Returns ErrEntityNotCached if the entity is absent
	GetEntity(ctx context.Context, kind models.EntityKind, id string) (*CachedEntity, error)

	// ListEntities returns all cached entities of the given kind
	ListEntities(ctx context.Context, kind models.EntityKind) ([]*CachedEntity, error)

	// DeleteEntity removes a cached entity
	DeleteEntity(ctx context.Context, kind models.EntityKind, id string) error
}
