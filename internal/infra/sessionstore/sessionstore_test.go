package sessionstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pixorva/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return newRedisStore(client, "test:", slog.New(slog.NewTextHandler(io.Discard, nil))), server
}

func TestRedisStore_SaveFindDelete(t *testing.T) {
	store, server := newTestRedisStore(t)
	ctx := context.Background()
	principal := &entity.Principal{ID: "uid-1", Email: "u@example.com"}

	require.NoError(t, store.Save(ctx, "sid-1", principal, time.Hour))
	assert.True(t, server.Exists("test:sid-1"))

	got, err := store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, principal, got)

	require.NoError(t, store.Delete(ctx, "sid-1"))
	got, err = store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, "sid-1"))
}

func TestRedisStore_Expires(t *testing.T) {
	store, server := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", &entity.Principal{ID: "uid-1"}, time.Minute))
	server.FastForward(2 * time.Minute)

	got, err := store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_UnreadablePayloadIsSignedOut(t *testing.T) {
	store, server := newTestRedisStore(t)
	require.NoError(t, server.Set("test:sid-1", "not-json"))

	got, err := store.Find(context.Background(), "sid-1")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_SaveFindExpire(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", &entity.Principal{ID: "uid-1", Email: "u@example.com"}, time.Minute))

	got, err := store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.ID)

	now = now.Add(time.Minute)
	got, err = store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", &entity.Principal{ID: "uid-1"}, time.Hour))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err := store.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
