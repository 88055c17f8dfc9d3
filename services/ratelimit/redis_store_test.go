package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "ratelimit:booking:"), mr
}

func TestRedisStore_EleventhRequestInWindowIsRejected(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	now := time.Now()

	for i := 1; i <= 10; i++ {
		res, err := store.Take(ctx, "1.2.3.4", 10, time.Minute, now)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i)
	}

	res, err := store.Take(ctx, "1.2.3.4", 10, time.Minute, now)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	assert.True(t, mr.Exists("ratelimit:booking:1.2.3.4"))
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:booking:1.2.3.4"))
}

func TestRedisStore_NewWindowAfterExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 11; i++ {
		_, err := store.Take(ctx, "k", 10, time.Minute, now)
		require.NoError(t, err)
	}

	mr.FastForward(61 * time.Second)

	res, err := store.Take(ctx, "k", 10, time.Minute, now.Add(61*time.Second))
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Counter.Count)
}

func TestRedisStore_ErrorWhenUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Take(context.Background(), "k", 10, time.Minute, time.Now())
	assert.Error(t, err)
}
