package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/multierr"

	"github.com/iudanet/lifedash/internal/backup"
	"github.com/iudanet/lifedash/internal/cli"
	"github.com/iudanet/lifedash/internal/config"
	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/iocli"
	"github.com/iudanet/lifedash/internal/storage"
	"github.com/iudanet/lifedash/internal/storage/boltdb"
	"github.com/iudanet/lifedash/internal/storage/sqlite"
	"github.com/iudanet/lifedash/internal/store"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println(config.Usage())
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s\n", err, config.Usage())
		os.Exit(1)
	}

	if cfg.Version {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (err error) {
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(st))

	dash := dashboard.NewService(store.New(st, logger), logger)
	if err := dash.Load(ctx); err != nil {
		return err
	}

	backups := backup.NewManager(dash, st, cfg.BackupDir, logger)
	return cli.New(iocli.NewStdio(), dash, backups, cfg.Passphrase).Run(ctx, cfg.Args)
}

// openStorage opens the configured backend.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	logger.Debug("opening storage", "backend", cfg.Storage, "path", cfg.DBPath)

	switch cfg.Storage {
	case storage.BackendSQLite:
		return sqlite.New(ctx, cfg.DBPath, logger)
	default:
		return boltdb.New(ctx, cfg.DBPath, logger)
	}
}

func printVersion() {
	fmt.Printf("lifedash\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
