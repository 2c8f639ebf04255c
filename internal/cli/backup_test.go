package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lifedash/internal/backup"
	"github.com/iudanet/lifedash/internal/dashboard"
)

func TestParseExportArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantSeal bool
		wantErr  bool
	}{
		{name: "no args"},
		{name: "path only", args: []string{"out.json"}, wantPath: "out.json"},
		{name: "seal only", args: []string{"--seal"}, wantSeal: true},
		{name: "seal before path", args: []string{"--seal", "out.json"}, wantPath: "out.json", wantSeal: true},
		{name: "seal after path", args: []string{"out.json", "-seal"}, wantPath: "out.json", wantSeal: true},
		{name: "two paths", args: []string{"a.json", "b.json"}, wantErr: true},
		{name: "unknown flag", args: []string{"--zip"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, seal, err := parseExportArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantSeal, seal)
		})
	}
}

func TestCli_ExportImport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.dash.AddHabit(ctx, "Read")
	require.NoError(t, err)

	path := filepath.Join(env.dir, "backup.json")
	require.NoError(t, env.cli.Run(ctx, []string{"export", path}))
	out := env.term.String()
	assert.Contains(t, out, "Backup exported successfully")
	assert.Contains(t, out, "File:    "+path)
	assert.NotContains(t, out, "encrypted")

	require.NoError(t, env.dash.DeleteHabit(ctx, env.dash.Habits()[0].ID))
	require.Empty(t, env.dash.Habits())

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"import", path}))
	assert.Contains(t, env.term.String(), "Replaced: exams, projects, habits, goals, transactions, budget")
	require.Len(t, env.dash.Habits(), 1)
	assert.Equal(t, "Read", env.dash.Habits()[0].Name)
}

func TestCli_ExportSealed_Interactive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.term.passwords = []string{"correct horse", "correct horse", "correct horse"}

	path := filepath.Join(env.dir, "sealed.json")
	require.NoError(t, env.cli.Run(ctx, []string{"export", "--seal", path}))
	assert.Contains(t, env.term.String(), "The backup is encrypted.")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, backup.IsSealed(data))

	require.NoError(t, env.cli.Run(ctx, []string{"import", path}))
	assert.Empty(t, env.term.passwords)
}

func TestCli_ExportSealed_Errors(t *testing.T) {
	tests := []struct {
		name      string
		passwords []string
		wantErr   error
	}{
		{name: "mismatch", passwords: []string{"correct horse", "correct mouse"}, wantErr: ErrPassphraseMismatch},
		{name: "too short", passwords: []string{"short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.term.passwords = tt.passwords

			path := filepath.Join(env.dir, "sealed.json")
			err := env.cli.Run(context.Background(), []string{"export", path, "--seal"})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoFileExists(t, path)
		})
	}
}

func TestCli_ImportSealed_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.cli.passphrase = "correct horse"

	path := filepath.Join(env.dir, "sealed.json")
	require.NoError(t, env.cli.Run(ctx, []string{"export", path, "--seal"}))

	env.cli.passphrase = ""
	env.term.passwords = []string{"battery staple"}
	err := env.cli.Run(ctx, []string{"import", path})
	require.ErrorIs(t, err, backup.ErrWrongPassphrase)
}

func TestCli_ImportMalformed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Analisi", CFU: 9})
	require.NoError(t, err)

	path := filepath.Join(env.dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600))

	err = env.cli.Run(ctx, []string{"import", path})
	require.ErrorIs(t, err, backup.ErrMalformed)
	assert.Contains(t, err.Error(), "nothing was changed")
	assert.Len(t, env.dash.Exams(), 1)
}

func TestCli_Import_MissingPath(t *testing.T) {
	env := newTestEnv(t)
	require.Error(t, env.cli.Run(context.Background(), []string{"import"}))
}

func TestCli_Status(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.dash.AddHabit(ctx, "Read")
	require.NoError(t, err)

	require.NoError(t, env.cli.Run(ctx, []string{"status"}))
	out := env.term.String()
	assert.Contains(t, out, "=== Storage Status ===")
	assert.Regexp(t, `habits\s+1\s+saved`, out)
	assert.Regexp(t, `exams\s+0\s+not saved yet`, out)
	assert.Contains(t, out, "Last export: never")
	assert.Contains(t, out, "No backup yet.")

	_, err = env.cli.backups.Export(ctx, "", "")
	require.NoError(t, err)
	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"status"}))
	out = env.term.String()
	assert.NotContains(t, out, "Last export: never")
	assert.NotContains(t, out, "No backup yet.")
}
