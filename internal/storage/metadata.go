package storage

import (
	"context"
	"time"
)

// Metadata keys used by the application.
const (
	MetaLastExport = "last_export"
	MetaLastImport = "last_import"
)

// MetadataStorage defines interface for storing client bookkeeping timestamps
type MetadataStorage interface {
	// SaveTimestamp saves a timestamp under key
	SaveTimestamp(ctx context.Context, key string, ts time.Time) error

	// GetTimestamp retrieves the timestamp stored under key
	// Returns the zero time if nothing has been saved yet
	GetTimestamp(ctx context.Context, key string) (time.Time, error)
}
