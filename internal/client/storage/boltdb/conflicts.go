package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
)

// SaveConflict stores or updates a conflict record
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.ConflictRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		data, err := json.Marshal(conflict)
		if err != nil {
			return fmt.Errorf("failed to marshal conflict: %w", err)
		}

		if err := bucket.Put([]byte(conflict.ID), data); err != nil {
			return fmt.Errorf("failed to save conflict: %w", err)
		}

		return nil
	})
}

// GetConflict retrieves a conflict record by its id
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.ConflictRecord, error) {
	var conflict *models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.ConflictRecord{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// ListConflicts returns all conflict records awaiting a decision
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	var conflicts []*models.ConflictRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			conflict := &models.ConflictRecord{}
			if err := json.Unmarshal(v, conflict); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}

			conflicts = append(conflicts, conflict)

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return conflicts, nil
}

// DeleteConflict removes a conflict record after resolution
func (s *Storage) DeleteConflict(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return fmt.Errorf("conflicts bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrConflictNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete conflict: %w", err)
		}

		return nil
	})
}

// CountConflicts returns the number of conflict records awaiting a decision
func (s *Storage) CountConflicts(ctx context.Context) (int, error) {
	conflicts, err := s.ListConflicts(ctx)
	if err != nil {
		return 0, err
	}
	return len(conflicts), nil
}
