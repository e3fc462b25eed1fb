package storage

import "errors"

// Common client storage errors
var (
	// ErrMutationNotFound indicates that no queued mutation exists for the id
	ErrMutationNotFound = errors.New("queued mutation not found")

	// ErrConflictNotFound indicates that conflict record was not found
	ErrConflictNotFound = errors.New("conflict record not found")

	// ErrEntityNotCached indicates that entity is absent from the local cache
	ErrEntityNotCached = errors.New("entity not cached")

	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
