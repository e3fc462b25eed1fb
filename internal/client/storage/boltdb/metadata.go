package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keyClockOffset       = "clock_offset"
)

// SaveLastSyncTimestamp saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.saveInt64(keyLastSyncTimestamp, timestamp)
}

// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	return s.getInt64(keyLastSyncTimestamp)
}

// SaveClockOffset saves the measured offset between server and local
// clocks in nanoseconds
func (s *Storage) SaveClockOffset(ctx context.Context, offset int64) error {
	return s.saveInt64(keyClockOffset, offset)
}

// GetClockOffset retrieves the last measured clock offset in nanoseconds
// Returns 0 if the offset has never been measured
func (s *Storage) GetClockOffset(ctx context.Context) (int64, error) {
	return s.getInt64(keyClockOffset)
}

// saveInt64 сохраняет int64 значение в metadata bucket
func (s *Storage) saveInt64(key string, value int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		valueBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(valueBytes, uint64(value))

		if err := bucket.Put([]byte(key), valueBytes); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}

// getInt64 читает int64 значение из metadata bucket, 0 если не записано
func (s *Storage) getInt64(key string) (int64, error) {
	var value int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		valueBytes := bucket.Get([]byte(key))
		if valueBytes == nil {
			value = 0
			return nil
		}

		value = int64(binary.BigEndian.Uint64(valueBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}
