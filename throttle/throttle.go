// Package throttle counts events per key in fixed windows kept in Redis.
package throttle

import (
	"context"
	"time"

	"renthub/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "renthub:throttle:"

// RedisLimiter admits at most Limit events per key per Window.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records one event for key and reports whether it is within the
// limit. When Redis is unreachable the event is allowed.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	key = keyPrefix + key
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Warn("throttle unavailable, allowing", "key", key, "err", err.Error())
		return true
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			logger.Warn("throttle expire failed", "key", key, "err", err.Error())
		}
	}
	return n <= l.limit
}

// Unlimited admits everything. Used when no Redis address is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) bool { return true }

// NewClient connects to addr and pings it once.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
