package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/storage/boltdb"
	"github.com/iudanet/lifedash/internal/store"
)

type testEnv struct {
	dash    dashboard.Service
	manager *Manager
	dir     string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	bolt, err := boltdb.New(ctx, filepath.Join(dir, "backup.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	dash := dashboard.NewService(store.New(bolt, nil), nil, dashboard.WithClock(func() time.Time { return exportTime }))
	require.NoError(t, dash.Load(ctx))
	require.NoError(t, dash.Replace(ctx, sampleState(), store.Slots))

	backupDir := filepath.Join(dir, "backups")
	return testEnv{dash: dash, manager: NewManager(dash, bolt, backupDir, nil), dir: backupDir}
}

func TestManager_ExportDefaultPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.manager.Export(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.dir, "life-dashboard-backup-10-06-2024.json"), res.Path)
	assert.False(t, res.Sealed)
	assert.Len(t, res.Checksum, 64)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exportedAt": "2024-06-10T09:30:00Z"`)
	assert.Contains(t, string(data), `"amount": 650.5`)

	last, err := env.manager.LastExport(ctx)
	require.NoError(t, err)
	assert.True(t, last.Equal(exportTime))

	never, err := env.manager.LastImport(ctx)
	require.NoError(t, err)
	assert.True(t, never.IsZero())
}

func TestManager_ExportIntoDirectory(t *testing.T) {
	env := newTestEnv(t)
	target := t.TempDir()

	res, err := env.manager.Export(context.Background(), target, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(target, FileName(exportTime)), res.Path)
}

func TestManager_RoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	before := env.dash.State()

	res, err := env.manager.Export(ctx, filepath.Join(t.TempDir(), "full.json"), "")
	require.NoError(t, err)

	// Меняем состояние, затем восстанавливаем из копии
	require.NoError(t, env.dash.DeleteExam(ctx, "e1"))
	_, err = env.dash.AddHabit(ctx, "Swim")
	require.NoError(t, err)

	imported, err := env.manager.Import(ctx, res.Path, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, store.Slots, imported.Slots)

	after := env.dash.State()
	assert.Equal(t, before.Exams, after.Exams)
	assert.Equal(t, before.Projects, after.Projects)
	assert.Equal(t, before.Habits, after.Habits)
	assert.Equal(t, before.Goals, after.Goals)
	assert.Len(t, after.Transactions, 1)
	assert.True(t, before.Budget.Equal(after.Budget))

	last, err := env.manager.LastImport(ctx)
	require.NoError(t, err)
	assert.True(t, last.Equal(exportTime))
}

func TestManager_PartialImport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	before := env.dash.State()

	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"budget": 42}`), 0o600))

	res, err := env.manager.Import(ctx, path, nil)
	require.NoError(t, err)
	assert.Equal(t, []store.Slot{store.SlotBudget}, res.Slots)

	after := env.dash.State()
	assert.True(t, after.Budget.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, before.Exams, after.Exams)
	assert.Equal(t, before.Habits, after.Habits)
}

func TestManager_MalformedImportChangesNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	before := env.dash.State()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"budget": 42, "exams": {"oops": true}}`), 0o600))

	_, err := env.manager.Import(ctx, path, nil)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, before, env.dash.State())

	_, err = env.manager.Import(ctx, filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_SealedRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.manager.Export(ctx, filepath.Join(t.TempDir(), "sealed.json"), "correct horse")
	require.NoError(t, err)
	assert.True(t, res.Sealed)

	_, err = env.manager.Import(ctx, res.Path, nil)
	assert.ErrorIs(t, err, ErrPassphraseRequired)

	_, err = env.manager.Import(ctx, res.Path, func() (string, error) { return "nope nope", nil })
	assert.ErrorIs(t, err, ErrWrongPassphrase)

	boom := errors.New("no tty")
	_, err = env.manager.Import(ctx, res.Path, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, env.dash.SetBudget(ctx, decimal.Zero))
	imported, err := env.manager.Import(ctx, res.Path, func() (string, error) { return "correct horse", nil })
	require.NoError(t, err)
	assert.True(t, imported.Sealed)
	assert.True(t, env.dash.Budget().Equal(decimal.NewFromInt(1000)))
}

func TestManager_ReplaceFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("read-only")
	dash := &dashboard.ServiceMock{
		StateFunc: func() models.State { return models.State{} },
		NowFunc:   func() time.Time { return exportTime },
		ReplaceFunc: func(ctx context.Context, next models.State, slots []store.Slot) error {
			return boom
		},
	}
	manager := NewManager(dash, nil, t.TempDir(), nil)

	path := filepath.Join(t.TempDir(), "ok.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"goals": []}`), 0o600))

	_, err := manager.Import(ctx, path, nil)
	assert.ErrorIs(t, err, boom)
	require.Len(t, dash.ReplaceCalls(), 1)
	assert.Equal(t, []store.Slot{store.SlotGoals}, dash.ReplaceCalls()[0].Slots)
}
