package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().
		WithHost(mr.Host()).
		WithPort(port).
		WithKeyPrefix("test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))

	assert.ErrorContains(t, err, "invalid Redis configuration")
}

func TestClient_Key(t *testing.T) {
	client, _ := newTestClient(t)

	assert.Equal(t, "test::forecast::1.5,2.5", client.Key("forecast", "1.5,2.5"))
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)
	cache := NewCache(client, "forecast", time.Minute)

	type payload struct {
		Temperature float64 `json:"temperature"`
	}

	t.Run("miss", func(t *testing.T) {
		var dest payload
		err := cache.Get(ctx, "missing", &dest)

		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "toronto", payload{Temperature: 21.5}))

		var dest payload
		require.NoError(t, cache.Get(ctx, "toronto", &dest))
		assert.Equal(t, 21.5, dest.Temperature)
		assert.Equal(t, time.Minute, mr.TTL("test::forecast::toronto"))
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "london", payload{Temperature: 12}))
		mr.FastForward(2 * time.Minute)

		var dest payload
		assert.ErrorIs(t, cache.Get(ctx, "london", &dest), ErrCacheMiss)
	})

	t.Run("corrupted value", func(t *testing.T) {
		require.NoError(t, mr.Set("test::forecast::broken", "not json"))

		var dest payload
		assert.ErrorContains(t, cache.Get(ctx, "broken", &dest), "failed to deserialize")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "paris", payload{Temperature: 18}))
		require.NoError(t, cache.Delete(ctx, "paris"))

		var dest payload
		assert.ErrorIs(t, cache.Get(ctx, "paris", &dest), ErrCacheMiss)
	})
}

func TestLock(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)
	opts := NewLockOptions().WithTTL(30 * time.Second)

	t.Run("second owner cannot acquire", func(t *testing.T) {
		first := NewLock(client, "sync", opts)
		second := NewLock(client, "sync", opts)

		ok, err := first.TryLock(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = second.TryLock(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.ErrorIs(t, second.Unlock(ctx), ErrLockNotHeld)
		require.NoError(t, first.Unlock(ctx))

		ok, err = second.TryLock(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, second.Unlock(ctx))
	})

	t.Run("refresh extends the ttl", func(t *testing.T) {
		lock := NewLock(client, "refresh", opts)
		ok, err := lock.TryLock(ctx)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(20 * time.Second)
		require.NoError(t, lock.Refresh(ctx))
		assert.Equal(t, 30*time.Second, mr.TTL("test::lock::refresh"))
	})

	t.Run("lock gives up after retries", func(t *testing.T) {
		holder := NewLock(client, "busy", opts)
		ok, err := holder.TryLock(ctx)
		require.NoError(t, err)
		require.True(t, ok)

		waiter := NewLock(client, "busy", &LockOptions{TTL: time.Second, RetryDelay: time.Millisecond, MaxRetries: 2})
		assert.ErrorIs(t, waiter.Lock(ctx), ErrLockNotAcquired)
	})
}

func TestClient_HealthCheck(t *testing.T) {
	client, mr := newTestClient(t)

	health := client.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, health.Status)
	assert.Equal(t, mr.Host(), health.Details["host"])

	mr.Close()

	health = client.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, health.Status)
	assert.NotEmpty(t, health.Details["message"])
}
