package storage

import (
	"context"

	"github.com/flightbase/flightbase/internal/models"
)

//go:generate moq -out conflicts_mock.go . ConflictStorage

// ConflictStorage defines interface for persisted unresolved conflicts.
// A conflict record stays until the user picks a resolution.
type ConflictStorage interface {
	// SaveConflict stores or updates a conflict record
	SaveConflict(ctx context.Context, conflict *models.ConflictRecord) error

	// GetConflict retrieves a conflict record by its id
	// Returns ErrConflictNotFound if the record doesn't exist
	GetConflict(ctx context.Context, id string) (*models.ConflictRecord, error)

	// ListConflicts returns all conflict records awaiting a decision
	ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error)

	// DeleteConflict removes a conflict record after resolution
	DeleteConflict(ctx context.Context, id string) error

	// CountConflicts returns the number of conflict records awaiting a decision
	CountConflicts(ctx context.Context) (int, error)
}
