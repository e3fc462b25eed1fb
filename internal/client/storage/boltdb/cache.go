package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
)

// cacheKey строит ключ kind/id для cache bucket
func cacheKey(kind models.EntityKind, id string) []byte {
	return []byte(string(kind) + "/" + id)
}

// SaveEntity stores or replaces a cached entity snapshot
func (s *Storage) SaveEntity(ctx context.Context, entity *storage.CachedEntity) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data, err := json.Marshal(entity)
		if err != nil {
			return fmt.Errorf("failed to marshal cached entity: %w", err)
		}

		if err := bucket.Put(cacheKey(entity.Kind, entity.ID), data); err != nil {
			return fmt.Errorf("failed to save cached entity: %w", err)
		}

		return nil
	})
}

// GetEntity retrieves a cached entity by kind and id
func (s *Storage) GetEntity(ctx context.Context, kind models.EntityKind, id string) (*storage.CachedEntity, error) {
	var entity *storage.CachedEntity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data := bucket.Get(cacheKey(kind, id))
		if data == nil {
			return storage.ErrEntityNotCached
		}

		entity = &storage.CachedEntity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal cached entity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListEntities returns all cached entities of the given kind
func (s *Storage) ListEntities(ctx context.Context, kind models.EntityKind) ([]*storage.CachedEntity, error) {
	var entities []*storage.CachedEntity
	prefix := string(kind) + "/"

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			if !strings.HasPrefix(string(k), prefix) {
				return nil
			}

			entity := &storage.CachedEntity{}
			if err := json.Unmarshal(v, entity); err != nil {
				return fmt.Errorf("failed to unmarshal cached entity: %w", err)
			}

			entities = append(entities, entity)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return entities, nil
}

// DeleteEntity removes a cached entity
func (s *Storage) DeleteEntity(ctx context.Context, kind models.EntityKind, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		if err := bucket.Delete(cacheKey(kind, id)); err != nil {
			return fmt.Errorf("failed to delete cached entity: %w", err)
		}

		return nil
	})
}
