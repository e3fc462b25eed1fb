package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/internal/server/storage"
)

// Timestamps are stored as Unix nanoseconds: conflict detection compares
// updated_at against client baselines and second granularity would fold
// distinct writes together.

// FindByID retrieves a row by kind and id
// Returns ErrEntityNotFound if the row doesn't exist or belongs to
// another owner
func (s *Storage) FindByID(ctx context.Context, ownerID string, kind models.EntityKind, id string) (*models.EntityRecord, error) {
	query := `
		SELECT id, kind, owner_id, fields, created_at, updated_at
		FROM entities
		WHERE kind = ? AND id = ? AND owner_id = ?
	`

	rec := &models.EntityRecord{}
	var fieldsJSON string
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, string(kind), id, ownerID).Scan(
		&rec.ID,
		&rec.Kind,
		&rec.OwnerID,
		&fieldsJSON,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}

	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	rec.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return rec, nil
}

// Create inserts a new row. Caller supplies the id; CreatedAt/UpdatedAt
// are stamped here.
func (s *Storage) Create(ctx context.Context, rec *models.EntityRecord) error {
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		INSERT INTO entities (id, kind, owner_id, fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Kind),
		rec.OwnerID,
		string(fieldsJSON),
		now.UnixNano(),
		now.UnixNano(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert entity: %w", err)
	}

	return nil
}

// Update patches an existing row: fields present in patch replace stored
// values, absent fields are left unchanged. UpdatedAt always moves
// forward, even against a clock stepping backwards.
func (s *Storage) Update(ctx context.Context, ownerID string, kind models.EntityKind, id string, patch map[string]any) (*models.EntityRecord, error) {
	existing, err := s.FindByID(ctx, ownerID, kind, id)
	if err != nil {
		return nil, err
	}

	if existing.Fields == nil {
		existing.Fields = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if k == "id" || k == "updated_at" {
			continue
		}
		existing.Fields[k] = v
	}

	updatedAt := time.Now().UTC()
	if !updatedAt.After(existing.UpdatedAt) {
		updatedAt = existing.UpdatedAt.Add(time.Nanosecond)
	}
	existing.UpdatedAt = updatedAt

	fieldsJSON, err := json.Marshal(existing.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		UPDATE entities
		SET fields = ?, updated_at = ?
		WHERE kind = ? AND id = ? AND owner_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(fieldsJSON),
		updatedAt.UnixNano(),
		string(kind),
		id,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, storage.ErrEntityNotFound
	}

	return existing, nil
}

// Delete removes a row permanently
// Returns ErrEntityNotFound if the row doesn't exist or belongs to
// another owner
func (s *Storage) Delete(ctx context.Context, ownerID string, kind models.EntityKind, id string) error {
	query := `DELETE FROM entities WHERE kind = ? AND id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, string(kind), id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEntityNotFound
	}

	return nil
}
