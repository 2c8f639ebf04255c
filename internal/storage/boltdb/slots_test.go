package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/lifedash/internal/storage"
)

func TestPutGetSlot(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.PutSlot(ctx, "life-dashboard-exams", []byte(`[{"id":"e1"}]`))
	require.NoError(t, err)

	got, err := store.GetSlot(ctx, "life-dashboard-exams")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"e1"}]`, string(got))

	// Перезапись заменяет значение целиком
	require.NoError(t, store.PutSlot(ctx, "life-dashboard-exams", []byte(`[]`)))
	got, err = store.GetSlot(ctx, "life-dashboard-exams")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestGetSlot_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetSlot(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	keys, err := store.ListSlots(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, store.PutSlot(ctx, k, []byte("1")))
	}

	keys, err = store.ListSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSlots_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"), nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.PutSlot(ctx, "k", nil), storage.ErrStorageClosed)
	_, err = store.GetSlot(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = store.ListSlots(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestPutSlot_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSlots)
	})
	require.NoError(t, err)

	err = store.PutSlot(ctx, "k", []byte("v"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "slots bucket not found")
}
