package storage

import "context"

//go:generate moq -out applied_mock.go . AppliedLog

// AppliedLog persists localId -> serverId mappings for successfully
// applied mutations. It makes create application idempotent: a client
// that never received the response for an applied batch resubmits the
// same localId and is acknowledged from the log instead of producing a
// duplicate row.
type AppliedLog interface {
	// Lookup returns the serverId previously recorded for (userID, localID).
	// Returns ErrAppliedNotFound if the mutation was never applied.
	Lookup(ctx context.Context, userID, localID string) (string, error)

	// Record stores the mapping for an applied mutation.
	// Recording the same (userID, localID) twice is not an error.
	Record(ctx context.Context, userID, localID, serverID string) error
}
