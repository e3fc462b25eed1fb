package storage

import (
	"context"

	"github.com/flightbase/flightbase/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable outgoing mutation queue.
// The queue survives process restarts and preserves enqueue order.
type QueueStorage interface {
	// Enqueue appends a mutation to the tail of the queue
	Enqueue(ctx context.Context, mutation *models.QueuedMutation) error

	// GetMutation retrieves a queued mutation by its local id
	// Returns ErrMutationNotFound if no such mutation is queued
	GetMutation(ctx context.Context, localID string) (*models.QueuedMutation, error)

	// ListPending returns all queued mutations in enqueue order
	ListPending(ctx context.Context) ([]*models.QueuedMutation, error)

	// RemoveMutation removes a mutation from the queue after the server
	// confirmed it or the user discarded it
	RemoveMutation(ctx context.Context, localID string) error

	// CountPending returns the number of queued mutations
	CountPending(ctx context.Context) (int, error)
}
