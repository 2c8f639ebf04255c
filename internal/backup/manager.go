package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/iudanet/lifedash/internal/crypto"
	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/storage"
	"github.com/iudanet/lifedash/internal/store"
)

// PassphraseFunc returns the passphrase for a sealed backup when one is needed.
type PassphraseFunc func() (string, error)

// Result описывает выполненный экспорт или импорт
type Result struct {
	Path     string
	Checksum string
	Slots    []store.Slot
	Sealed   bool
}

// Manager exports and imports the state held by a dashboard service and
// records the time of the last export and import in storage metadata.
type Manager struct {
	dash   dashboard.Service
	meta   storage.MetadataStorage
	logger *slog.Logger
	dir    string
}

// NewManager creates a Manager writing default exports into dir.
func NewManager(dash dashboard.Service, meta storage.MetadataStorage, dir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{dash: dash, meta: meta, dir: dir, logger: logger}
}

// Export writes the current state to path. An empty path, or a path naming an
// existing directory, gets the default dated file name. With a non-empty
// passphrase the document is sealed.
func (m *Manager) Export(ctx context.Context, path, passphrase string) (Result, error) {
	now := m.dash.Now()

	data, err := NewDocument(m.dash.State(), now).Marshal()
	if err != nil {
		return Result{}, err
	}

	sealed := passphrase != ""
	if sealed {
		if data, err = Seal(data, passphrase); err != nil {
			return Result{}, err
		}
	}

	path, err = m.resolvePath(path, now)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return Result{}, fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.meta.SaveTimestamp(ctx, storage.MetaLastExport, now); err != nil {
		return Result{}, fmt.Errorf("failed to record export time: %w", err)
	}

	res := Result{Path: path, Checksum: crypto.Checksum(data), Sealed: sealed, Slots: store.Slots}
	m.logger.InfoContext(ctx, "backup exported", "path", path, "sealed", sealed, "sha256", res.Checksum)
	return res, nil
}

func (m *Manager) resolvePath(path string, now time.Time) (string, error) {
	if path == "" {
		if err := os.MkdirAll(m.dir, 0o700); err != nil {
			return "", fmt.Errorf("failed to create backup directory: %w", err)
		}
		return filepath.Join(m.dir, FileName(now)), nil
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, FileName(now)), nil
	}
	return path, nil
}

// Import reads the document at path and replaces every collection it contains.
// Nothing is applied when the file is malformed. passphrase is only called
// for sealed files.
func (m *Manager) Import(ctx context.Context, path string, passphrase PassphraseFunc) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read backup: %w", err)
	}
	res := Result{Path: path, Checksum: crypto.Checksum(data)}

	if IsSealed(data) {
		res.Sealed = true
		if passphrase == nil {
			return Result{}, ErrPassphraseRequired
		}
		pass, err := passphrase()
		if err != nil {
			return Result{}, fmt.Errorf("failed to read passphrase: %w", err)
		}
		if data, err = Open(data, pass); err != nil {
			return Result{}, err
		}
	}

	patch, err := Parse(data)
	if err != nil {
		return Result{}, err
	}

	res.Slots = patch.Slots()
	next := patch.Apply(m.dash.State())
	if err := m.dash.Replace(ctx, next, res.Slots); err != nil {
		return Result{}, fmt.Errorf("failed to apply backup: %w", err)
	}

	if err := m.meta.SaveTimestamp(ctx, storage.MetaLastImport, m.dash.Now()); err != nil {
		return Result{}, fmt.Errorf("failed to record import time: %w", err)
	}

	m.logger.InfoContext(ctx, "backup imported", "path", path, "slots", res.Slots)
	return res, nil
}

// LastExport returns when the state was last exported; zero if never.
func (m *Manager) LastExport(ctx context.Context) (time.Time, error) {
	return m.timestamp(ctx, storage.MetaLastExport)
}

// LastImport returns when a backup was last imported; zero if never.
func (m *Manager) LastImport(ctx context.Context) (time.Time, error) {
	return m.timestamp(ctx, storage.MetaLastImport)
}

func (m *Manager) timestamp(ctx context.Context, key string) (time.Time, error) {
	t, err := m.meta.GetTimestamp(ctx, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return t, nil
}
