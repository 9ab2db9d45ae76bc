package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, limit, window), mr
}

func TestRedisLimiterWindow(t *testing.T) {
	ctx := context.Background()
	l, mr := newLimiter(t, 2, time.Minute)

	assert.True(t, l.Allow(ctx, "reset:a@example.com"))
	assert.True(t, l.Allow(ctx, "reset:a@example.com"))
	assert.False(t, l.Allow(ctx, "reset:a@example.com"))
	assert.True(t, l.Allow(ctx, "reset:b@example.com"))

	ttl := mr.TTL(keyPrefix + "reset:a@example.com")
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, "reset:a@example.com"))
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Minute)
	mr.Close()

	assert.True(t, l.Allow(context.Background(), "reset:a@example.com"))
	assert.True(t, l.Allow(context.Background(), "reset:a@example.com"))
}

func TestNewClientPing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	addr := mr.Addr()
	client, err := NewClient(context.Background(), addr, "", 0)
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = NewClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestUnlimited(t *testing.T) {
	assert.True(t, Unlimited{}.Allow(context.Background(), "anything"))
}
