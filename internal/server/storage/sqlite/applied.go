package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flightbase/flightbase/internal/server/storage"
)

// Lookup returns the serverId previously recorded for (userID, localID)
// Returns ErrAppliedNotFound if the mutation was never applied
func (s *Storage) Lookup(ctx context.Context, userID, localID string) (string, error) {
	query := `SELECT server_id FROM sync_applied WHERE user_id = ? AND local_id = ?`

	var serverID string
	err := s.db.QueryRowContext(ctx, query, userID, localID).Scan(&serverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrAppliedNotFound
		}
		return "", fmt.Errorf("failed to look up applied mapping: %w", err)
	}

	return serverID, nil
}

// Record stores the localId -> serverId mapping for an applied mutation.
// Replaying the same mapping is a no-op rather than an error, so a retried
// batch cannot fail on its own bookkeeping.
func (s *Storage) Record(ctx context.Context, userID, localID, serverID string) error {
	query := `
		INSERT INTO sync_applied (user_id, local_id, server_id, applied_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, local_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, userID, localID, serverID, time.Now().UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record applied mapping: %w", err)
	}

	return nil
}
