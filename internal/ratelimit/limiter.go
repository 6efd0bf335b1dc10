// Package ratelimit implements a fixed-window request limiter backed by
// redis. The limiter fails open: if redis is unreachable the request is
// allowed, since an advisory served beats an advisory refused.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fin-advisory/internal/common/logger"
)

type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger logger.Logger
}

func New(client *redis.Client, limit int, window time.Duration, log logger.Logger) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		logger: log.With(map[string]interface{}{
			"component": "rate-limiter",
		}),
	}
}

// Allow reports whether the client identified by key may proceed within the
// current window.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(l.window.Seconds()))

	count, err := l.client.Incr(ctx, bucket).Result()
	if err != nil {
		l.logger.Warn("redis unavailable, allowing request", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return true
	}

	if count == 1 {
		l.client.Expire(ctx, bucket, l.window)
	}

	return count <= int64(l.limit)
}
