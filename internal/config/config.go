// Package config loads lifedash settings.
// Flags override environment variables, which override defaults. Variables
// may also come from a .env file; variables already set in the process
// environment take precedence over the file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iudanet/lifedash/internal/storage"
)

// Переменные окружения
const (
	EnvDB         = "LIFEDASH_DB"
	EnvStorage    = "LIFEDASH_STORAGE"
	EnvBackupDir  = "LIFEDASH_BACKUP_DIR"
	EnvLogLevel   = "LIFEDASH_LOG_LEVEL"
	EnvPassphrase = "LIFEDASH_BACKUP_PASSPHRASE"
	EnvFile       = "LIFEDASH_ENV_FILE"
)

// Значения по умолчанию
const (
	DefaultDBPath    = "lifedash.db"
	DefaultStorage   = storage.BackendBolt
	DefaultBackupDir = "."
	DefaultLogLevel  = "warn"
	DefaultEnvFile   = ".env"
)

// Config holds the settings of one lifedash invocation.
type Config struct {
	DBPath     string
	Storage    string
	BackupDir  string
	Passphrase string
	Args       []string
	LogLevel   slog.Level
	Version    bool
}

// Load reads the .env file (if any) and parses args, which must not include
// the program name. The remaining positional arguments are returned in Args.
func Load(args []string) (*Config, error) {
	envFile := getEnv(EnvFile, DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{}
	var level string

	flags := flag.NewFlagSet("lifedash", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.DBPath, "db", getEnv(EnvDB, DefaultDBPath), "Path to local database")
	flags.StringVar(&cfg.Storage, "storage", getEnv(EnvStorage, DefaultStorage), "Storage backend: bolt or sqlite")
	flags.StringVar(&cfg.BackupDir, "backup-dir", getEnv(EnvBackupDir, DefaultBackupDir), "Directory for exported backups")
	flags.StringVar(&level, "log-level", getEnv(EnvLogLevel, DefaultLogLevel), "Log level: debug, info, warn, error")
	flags.BoolVar(&cfg.Version, "version", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.Args = flags.Args()
	cfg.Passphrase = getEnv(EnvPassphrase, "")

	if err := storage.ValidateBackend(cfg.Storage); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return cfg, nil
}

// Usage describes the global flags.
func Usage() string {
	return `Global flags:
  --db PATH           Path to local database (env LIFEDASH_DB, default lifedash.db)
  --storage NAME      Storage backend: bolt or sqlite (env LIFEDASH_STORAGE, default bolt)
  --backup-dir DIR    Directory for exported backups (env LIFEDASH_BACKUP_DIR, default .)
  --log-level LEVEL   debug, info, warn or error (env LIFEDASH_LOG_LEVEL, default warn)
  --version           Show version information`
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
