package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the timestamp of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// SaveClockOffset saves the measured offset between server and local
	// clocks in nanoseconds
	SaveClockOffset(ctx context.Context, offset int64) error

	// GetClockOffset retrieves the last measured clock offset in nanoseconds
	// Returns 0 if the offset has never been measured
	GetClockOffset(ctx context.Context) (int64, error)
}
