// Package storage declares the durable storage contracts shared by the
// bbolt and sqlite backends.
package storage

import "fmt"

// Backend names accepted by configuration.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Storage is a complete backend: slots plus metadata.
type Storage interface {
	SlotStorage
	MetadataStorage
	Close() error
}

// ValidateBackend checks a backend name from configuration.
func ValidateBackend(name string) error {
	switch name {
	case BackendBolt, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q, use %q or %q", name, BackendBolt, BackendSQLite)
	}
}
