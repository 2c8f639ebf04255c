package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lifedash/internal/storage"
)

// PutSlot stores value under key, replacing any previous value
func (s *Storage) PutSlot(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save slot %s: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "slot saved", "key", key, "bytes", len(value))
	return nil
}

// GetSlot returns a copy of the raw value stored under key
func (s *Storage) GetSlot(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrSlotNotFound
		}

		// Значение валидно только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// ListSlots returns all stored keys; bbolt iterates keys in byte order
func (s *Storage) ListSlots(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	return keys, nil
}
