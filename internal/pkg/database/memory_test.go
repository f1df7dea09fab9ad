package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) *MemoryStore {
	store := NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := newTestMemoryStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "status:ABC")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "status:ABC", "waiting", time.Minute))
	val, err := store.Get(ctx, "status:ABC")
	require.NoError(t, err)
	assert.Equal(t, "waiting", val)

	require.NoError(t, store.Delete(ctx, "status:ABC"))
	_, err = store.Get(ctx, "status:ABC")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "status:ABC"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "status:ABC", "waiting", 50*time.Millisecond))
	require.NoError(t, store.Set(ctx, "req_loc:ABC", "{}", time.Hour))

	_, err := store.Get(ctx, "status:ABC")
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, "status:ABC")
		return err == ErrKeyNotFound
	}, time.Second, 10*time.Millisecond)

	_, err = store.Get(ctx, "req_loc:ABC")
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_ReadDoesNotExtendExpiry(t *testing.T) {
	store := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "status:ABC", "waiting", 150*time.Millisecond))

	deadline := time.Now().Add(150 * time.Millisecond)
	for time.Now().Before(deadline.Add(-50 * time.Millisecond)) {
		_, _ = store.Get(ctx, "status:ABC")
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, "status:ABC")
		return err == ErrKeyNotFound
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestMemoryStore_OverwriteResetsExpiry(t *testing.T) {
	store := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "status:ABC", "waiting", 50*time.Millisecond))
	require.NoError(t, store.Set(ctx, "status:ABC", "confirmed", time.Hour))
	time.Sleep(100 * time.Millisecond)

	val, err := store.Get(ctx, "status:ABC")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", val)
}

func TestMemoryStore_NoExpiration(t *testing.T) {
	store := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	time.Sleep(20 * time.Millisecond)

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
	assert.NoError(t, store.Ping(ctx))
}
