package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/movecar/internal/pkg/database"
	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return &database.RedisClient{Client: client}, mr
}

func TestMoveCarRepo_Status(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)
	ctx := context.Background()

	_, found, err := repo.GetStatus(ctx, "京A12345")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetStatus(ctx, "京A12345", models.StatusWaiting))

	raw, err := mr.Get("status:京A12345")
	require.NoError(t, err)
	assert.Equal(t, "waiting", raw)
	assert.Equal(t, 600*time.Second, mr.TTL("status:京A12345"))

	status, found, err := repo.GetStatus(ctx, "京A12345")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.StatusWaiting, status)

	mr.FastForward(601 * time.Second)

	_, found, err = repo.GetStatus(ctx, "京A12345")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMoveCarRepo_RequesterLocation(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)
	ctx := context.Background()

	loc, err := repo.GetRequesterLocation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Nil(t, loc)

	want := &models.RequesterLocation{
		Lat: 39.9014, Lng: 116.4062, RawLat: 39.9, RawLng: 116.4, Geohash: "wx4g0b7",
		MapLinks: models.MapLinks{AmapURL: "https://uri.amap.com/marker", AppleURL: "https://maps.apple.com/"},
	}
	require.NoError(t, repo.SetRequesterLocation(ctx, "京A12345", want))
	assert.Equal(t, 3600*time.Second, mr.TTL("req_loc:京A12345"))

	got, err := repo.GetRequesterLocation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mr.FastForward(3601 * time.Second)
	got, err = repo.GetRequesterLocation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMoveCarRepo_OwnerLocation(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)
	ctx := context.Background()

	want := &models.OwnerLocation{Lat: 31.228, Lng: 121.474, RawLat: 31.23, RawLng: 121.47, ConfirmedAt: 1700000000000}
	require.NoError(t, repo.SetOwnerLocation(ctx, "沪B67890", want))
	assert.Equal(t, 3600*time.Second, mr.TTL("owner_loc:沪B67890"))

	got, err := repo.GetOwnerLocation(ctx, "沪B67890")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.DeleteOwnerLocation(ctx, "沪B67890"))
	assert.False(t, mr.Exists("owner_loc:沪B67890"))

	got, err = repo.GetOwnerLocation(ctx, "沪B67890")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting an absent record is not an error
	require.NoError(t, repo.DeleteOwnerLocation(ctx, "沪B67890"))
}

func TestMoveCarRepo_AllowCall(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)
	ctx := context.Background()

	allow, err := repo.GetAllowCall(ctx, "京A12345")
	require.NoError(t, err)
	assert.False(t, allow)

	require.NoError(t, repo.SetAllowCall(ctx, "京A12345", true))
	raw, _ := mr.Get("allow_call:京A12345")
	assert.Equal(t, "true", raw)
	assert.Equal(t, 600*time.Second, mr.TTL("allow_call:京A12345"))

	allow, err = repo.GetAllowCall(ctx, "京A12345")
	require.NoError(t, err)
	assert.True(t, allow)

	require.NoError(t, repo.SetAllowCall(ctx, "京A12345", false))
	allow, err = repo.GetAllowCall(ctx, "京A12345")
	require.NoError(t, err)
	assert.False(t, allow)

	require.NoError(t, repo.SetAllowCall(ctx, "京A12345", true))
	require.NoError(t, repo.ClearAllowCall(ctx, "京A12345"))
	assert.False(t, mr.Exists("allow_call:京A12345"))
}

func TestMoveCarRepo_Escalation(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)
	ctx := context.Background()

	rec, err := repo.GetEscalation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Nil(t, rec)

	want := &models.EscalationRecord{Count: 2, LastNotifyAt: 1700000000000}
	require.NoError(t, repo.SetEscalation(ctx, "京A12345", want))
	assert.Equal(t, 600*time.Second, mr.TTL("escalation:京A12345"))

	rec, err = repo.GetEscalation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Equal(t, want, rec)
}

func TestMoveCarRepo_CorruptRecord(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	repo := NewMoveCarRepository(redisClient)

	require.NoError(t, mr.Set("owner_loc:京A12345", "{not json"))

	_, err := repo.GetOwnerLocation(context.Background(), "京A12345")
	assert.Error(t, err)
}

func TestMoveCarRepo_MemoryStore(t *testing.T) {
	store := database.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	repo := NewMoveCarRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SetStatus(ctx, "京A12345", models.StatusConfirmed))
	require.NoError(t, repo.SetAllowCall(ctx, "京A12345", true))
	require.NoError(t, repo.DeleteOwnerLocation(ctx, "京A12345"))

	status, found, err := repo.GetStatus(ctx, "京A12345")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.StatusConfirmed, status)

	allow, err := repo.GetAllowCall(ctx, "京A12345")
	require.NoError(t, err)
	assert.True(t, allow)

	loc, err := repo.GetOwnerLocation(ctx, "京A12345")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

type failingStore struct{}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("store unavailable")
}
func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("store unavailable")
}
func (failingStore) Delete(context.Context, string) error { return errors.New("store unavailable") }
func (failingStore) Ping(context.Context) error           { return errors.New("store unavailable") }

func TestMoveCarRepo_StoreErrorsPropagate(t *testing.T) {
	repo := NewMoveCarRepository(failingStore{})
	ctx := context.Background()

	_, _, err := repo.GetStatus(ctx, "X")
	assert.Error(t, err)
	assert.Error(t, repo.SetStatus(ctx, "X", models.StatusWaiting))
	assert.Error(t, repo.DeleteOwnerLocation(ctx, "X"))
	_, err = repo.GetAllowCall(ctx, "X")
	assert.Error(t, err)
}
