package config

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv удаляет переменную на время теста и восстанавливает ее после
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func isolate(t *testing.T) {
	t.Helper()
	unsetEnv(t, EnvDB, EnvStorage, EnvBackupDir, EnvLogLevel, EnvPassphrase)
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{"overview"})
	require.NoError(t, err)

	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "bolt", cfg.Storage)
	assert.Equal(t, ".", cfg.BackupDir)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "", cfg.Passphrase)
	assert.False(t, cfg.Version)
	assert.Equal(t, []string{"overview"}, cfg.Args)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/data/dash.db")
	t.Setenv(EnvStorage, "sqlite")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPassphrase, "correct horse")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/dash.db", cfg.DBPath)
	assert.Equal(t, "sqlite", cfg.Storage)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "correct horse", cfg.Passphrase)
	assert.Empty(t, cfg.Args)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/data/dash.db")

	cfg, err := Load([]string{"--db", "other.db", "--backup-dir", "/tmp/bk", "--log-level", "ERROR", "export", "--seal"})
	require.NoError(t, err)

	assert.Equal(t, "other.db", cfg.DBPath)
	assert.Equal(t, "/tmp/bk", cfg.BackupDir)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, []string{"export", "--seal"}, cfg.Args)
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LIFEDASH_DB=from-file.db\nLIFEDASH_BACKUP_DIR=/backups\n"), 0o600))
	t.Setenv(EnvFile, envFile)
	t.Setenv(EnvBackupDir, "/from-env")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "from-file.db", cfg.DBPath)
	assert.Equal(t, "/from-env", cfg.BackupDir, "process environment wins over .env")
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	_, err := Load([]string{"--storage", "postgres"})
	assert.Error(t, err)

	_, err = Load([]string{"--log-level", "loud"})
	assert.Error(t, err)

	_, err = Load([]string{"--unknown"})
	assert.Error(t, err)

	_, err = Load([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestLoad_Version(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.Version)
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage(), "--storage")
}
