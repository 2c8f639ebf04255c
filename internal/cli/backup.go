package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/lifedash/internal/backup"
	"github.com/iudanet/lifedash/internal/validation"
)

// ErrPassphraseMismatch возвращается, если пароли при вводе не совпали
var ErrPassphraseMismatch = errors.New("passphrases do not match")

// parseExportArgs accepts the path and --seal in any order.
func parseExportArgs(args []string) (path string, seal bool, err error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&seal, "seal", false, "encrypt the backup with a passphrase")

	for {
		if err := fs.Parse(args); err != nil {
			return "", false, fmt.Errorf("invalid export arguments: %w", err)
		}
		if fs.NArg() == 0 {
			return path, seal, nil
		}
		if path != "" {
			return "", false, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		}
		path = fs.Arg(0)
		args = fs.Args()[1:]
	}
}

func (c *Cli) runExport(ctx context.Context, args []string) error {
	path, seal, err := parseExportArgs(args)
	if err != nil {
		return err
	}

	var passphrase string
	if seal {
		if passphrase, err = c.newPassphrase(); err != nil {
			return err
		}
	}

	res, err := c.backups.Export(ctx, path, passphrase)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	c.io.Println("✓ Backup exported successfully!")
	c.io.Printf("File:    %s\n", res.Path)
	c.io.Printf("SHA-256: %s\n", res.Checksum)
	if res.Sealed {
		c.io.Println("The backup is encrypted. Keep the passphrase, it cannot be recovered.")
	}
	return nil
}

// newPassphrase returns the configured passphrase or asks for a new one twice.
func (c *Cli) newPassphrase() (string, error) {
	if c.passphrase != "" {
		return c.passphrase, validation.ValidatePassphrase(c.passphrase)
	}

	pass, err := c.io.ReadPassword("Backup passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if err := validation.ValidatePassphrase(pass); err != nil {
		return "", err
	}
	again, err := c.io.ReadPassword("Repeat passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if pass != again {
		return "", ErrPassphraseMismatch
	}
	return pass, nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("import PATH")
	}

	ask := func() (string, error) {
		if c.passphrase != "" {
			return c.passphrase, nil
		}
		return c.io.ReadPassword("Backup passphrase: ")
	}

	res, err := c.backups.Import(ctx, args[0], ask)
	if err != nil {
		if errors.Is(err, backup.ErrMalformed) {
			return fmt.Errorf("import failed, nothing was changed: %w", err)
		}
		return fmt.Errorf("import failed: %w", err)
	}

	sections := make([]string, len(res.Slots))
	for i, s := range res.Slots {
		sections[i] = string(s)
	}
	c.io.Println("✓ Backup imported successfully!")
	c.io.Printf("Replaced: %s\n", strings.Join(sections, ", "))

	if last, err := c.backups.LastExport(ctx); err == nil && !last.IsZero() {
		c.io.Printf("Last export from this machine: %s\n", humanize.Time(last))
	}
	return nil
}
