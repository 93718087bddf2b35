// Package ratelimit throttles repeated failed logins with a Redis
// counter per account.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:failures:"

// RedisLoginLimiter counts failed attempts per email in a fixed window.
// Once the counter reaches the limit, Allow refuses until the window key
// expires.
type RedisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, email string) error {
	count, err := l.client.Get(ctx, keyPrefix+email).Int64()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read login counter: %w", err)
	}
	if count >= int64(l.maxAttempts) {
		return fmt.Errorf("account %q is locked out", email)
	}
	return nil
}

func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := keyPrefix + email

	pipe := l.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	return nil
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to reset login counter: %w", err)
	}
	return nil
}
