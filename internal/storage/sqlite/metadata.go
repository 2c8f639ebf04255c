package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/lifedash/internal/storage"
)

// SaveTimestamp saves a timestamp under key
func (s *Storage) SaveTimestamp(ctx context.Context, key string, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, ts.UnixNano()); err != nil {
		return fmt.Errorf("failed to save %s timestamp: %w", key, err)
	}
	return nil
}

// GetTimestamp retrieves the timestamp stored under key
// Returns the zero time if nothing has been saved yet
func (s *Storage) GetTimestamp(ctx context.Context, key string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var nanos int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&nanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get %s timestamp: %w", key, err)
	}

	return time.Unix(0, nanos), nil
}
