package storage

import "context"

//go:generate moq -out slots_mock.go . SlotStorage

// SlotStorage defines the lowest storage layer: a flat key space of raw values.
// It knows nothing about the format of the values; encoding happens in the store layer.
type SlotStorage interface {
	// PutSlot stores value under key, replacing any previous value
	PutSlot(ctx context.Context, key string, value []byte) error

	// GetSlot returns the raw value stored under key
	// Returns ErrSlotNotFound if nothing was stored yet
	GetSlot(ctx context.Context, key string) ([]byte, error)

	// ListSlots returns all stored keys in lexical order
	ListSlots(ctx context.Context) ([]string, error)
}
