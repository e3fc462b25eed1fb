package storage

import (
	"context"

	"github.com/flightbase/flightbase/internal/models"
)

//go:generate moq -out gateway_mock.go . EntityGateway

// EntityGateway defines per-kind persistence for sync-eligible entities.
// Rows are keyed by an opaque id; UpdatedAt is maintained by the gateway
// and must increase monotonically on every successful Create/Update/Delete.
// Every lookup is scoped to the owning user: another user's row behaves
// as if it does not exist.
type EntityGateway interface {
	// FindByID retrieves a row by kind and id.
	// Returns ErrEntityNotFound if the row doesn't exist or belongs to
	// another owner.
	FindByID(ctx context.Context, ownerID string, kind models.EntityKind, id string) (*models.EntityRecord, error)

	// Create inserts a new row owned by rec.OwnerID.
	// The id must be generated by the caller.
	Create(ctx context.Context, rec *models.EntityRecord) error

	// Update patches an existing row: fields present in patch replace the
	// stored values, absent fields are left unchanged.
	// Returns ErrEntityNotFound if the row doesn't exist or belongs to
	// another owner.
	Update(ctx context.Context, ownerID string, kind models.EntityKind, id string, patch map[string]any) (*models.EntityRecord, error)

	// Delete removes a row permanently.
	// Returns ErrEntityNotFound if the row doesn't exist or belongs to
	// another owner.
	Delete(ctx context.Context, ownerID string, kind models.EntityKind, id string) error
}
