package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
)

// Очередь хранится под монотонными sequence-ключами, чтобы ListPending
// возвращал мутации в порядке постановки. Индекс local_id -> seq нужен
// для удаления по local_id.

// Enqueue appends a mutation to the tail of the queue
func (s *Storage) Enqueue(ctx context.Context, mutation *models.QueuedMutation) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)
		if queue == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		data, err := json.Marshal(mutation)
		if err != nil {
			return fmt.Errorf("failed to marshal mutation: %w", err)
		}

		seq, err := queue.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := queue.Put(key, data); err != nil {
			return fmt.Errorf("failed to save mutation: %w", err)
		}

		if err := index.Put([]byte(mutation.LocalID), key); err != nil {
			return fmt.Errorf("failed to index mutation: %w", err)
		}

		return nil
	})
}

// GetMutation retrieves a queued mutation by its local id
func (s *Storage) GetMutation(ctx context.Context, localID string) (*models.QueuedMutation, error) {
	var mutation *models.QueuedMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)
		if queue == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		key := index.Get([]byte(localID))
		if key == nil {
			return storage.ErrMutationNotFound
		}

		data := queue.Get(key)
		if data == nil {
			return storage.ErrMutationNotFound
		}

		mutation = &models.QueuedMutation{}
		if err := json.Unmarshal(data, mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return mutation, nil
}

// ListPending returns all queued mutations in enqueue order
func (s *Storage) ListPending(ctx context.Context) ([]*models.QueuedMutation, error) {
	var mutations []*models.QueuedMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		if queue == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// Sequence-ключи лексикографически упорядочены, ForEach
		// возвращает их по возрастанию
		return queue.ForEach(func(k, v []byte) error {
			mutation := &models.QueuedMutation{}
			if err := json.Unmarshal(v, mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			mutations = append(mutations, mutation)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return mutations, nil
}

// RemoveMutation removes a mutation from the queue
func (s *Storage) RemoveMutation(ctx context.Context, localID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)
		if queue == nil || index == nil {
			return fmt.Errorf("queue buckets not found")
		}

		key := index.Get([]byte(localID))
		if key == nil {
			return storage.ErrMutationNotFound
		}

		if err := queue.Delete(key); err != nil {
			return fmt.Errorf("failed to delete mutation: %w", err)
		}

		if err := index.Delete([]byte(localID)); err != nil {
			return fmt.Errorf("failed to delete mutation index: %w", err)
		}

		return nil
	})
}

// CountPending returns the number of queued mutations
func (s *Storage) CountPending(ctx context.Context) (int, error) {
	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		if queue == nil {
			return fmt.Errorf("queue bucket not found")
		}
		count = queue.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}
