package storage

import "errors"

// Common storage errors
var (
	// ErrSlotNotFound indicates that nothing has been stored under the key yet
	ErrSlotNotFound = errors.New("slot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
