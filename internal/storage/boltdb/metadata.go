package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lifedash/internal/storage"
)

// SaveTimestamp saves a timestamp under key with nanosecond precision
func (s *Storage) SaveTimestamp(ctx context.Context, key string, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(ts.UnixNano()))

		if err := bucket.Put([]byte(key), timestampBytes); err != nil {
			return fmt.Errorf("failed to save %s timestamp: %w", key, err)
		}

		return nil
	})
}

// GetTimestamp retrieves the timestamp stored under key
// Returns the zero time if nothing has been saved yet
func (s *Storage) GetTimestamp(ctx context.Context, key string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(key))
		if timestampBytes == nil {
			return nil
		}
		if len(timestampBytes) != 8 {
			return fmt.Errorf("corrupted %s timestamp: %d bytes", key, len(timestampBytes))
		}

		ts = time.Unix(0, int64(binary.BigEndian.Uint64(timestampBytes)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get %s timestamp: %w", key, err)
	}

	return ts, nil
}
