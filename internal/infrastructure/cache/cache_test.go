package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestDisabledUserStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewDisabledUserStore(client, time.Hour)
	userID := uuid.New()

	disabled, err := store.IsDisabled(ctx, userID)
	require.NoError(t, err)
	assert.False(t, disabled)

	require.NoError(t, store.MarkDisabled(ctx, userID))

	disabled, err = store.IsDisabled(ctx, userID)
	require.NoError(t, err)
	assert.True(t, disabled)
	assert.Equal(t, time.Hour, mr.TTL(DisabledUserKey(userID)))

	mr.FastForward(time.Hour + time.Second)
	disabled, err = store.IsDisabled(ctx, userID)
	require.NoError(t, err)
	assert.False(t, disabled)
}

func TestDisabledUserStore_RedisDown(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewDisabledUserStore(client, time.Hour)
	mr.Close()

	_, err := store.IsDisabled(ctx, uuid.New())
	assert.Error(t, err)
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	cfg := RateLimitConfig{Type: "test", Requests: 2, Window: time.Minute}

	first, err := limiter.Allow(ctx, "actor-1", cfg)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)

	second, err := limiter.Allow(ctx, "actor-1", cfg)
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := limiter.Allow(ctx, "actor-1", cfg)
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.False(t, third.RetryAt.IsZero())

	other, err := limiter.Allow(ctx, "actor-2", cfg)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("5f0cfa4f-5b8a-4c2b-9d8c-2b1f1e0e8a11")
	assert.Equal(t, "user:disabled:5f0cfa4f-5b8a-4c2b-9d8c-2b1f1e0e8a11", DisabledUserKey(id))
	assert.Equal(t, "ratelimit:api:write:1.2.3.4", RateLimitKey("api:write", "1.2.3.4"))
}
