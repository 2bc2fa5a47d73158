// Copyright (c) 2026 Groupdex. All rights reserved.

package ticker

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/groupdex/groupdex/internal/platform/constants"
)

// RedisStore implements [Store] on go-redis. Failures are absorbed so a
// broken cache only costs extra upstream fetches.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisStore creates a Redis backed ticker cache.
func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

// Get fetches the cached feed payload.
func (store *RedisStore) Get(context context.Context, feed string) ([]byte, bool) {
	payload, err := store.client.Get(context, constants.RedisPrefixTicker+feed).Bytes()
	if err != nil {
		if err != redis.Nil {
			store.logger.Warn("ticker cache read failed", slog.Any("error", err))
		}
		return nil, false
	}
	return payload, true
}

// Set stores the feed payload with the given TTL.
func (store *RedisStore) Set(context context.Context, feed string, payload []byte, ttl time.Duration) {
	if err := store.client.Set(context, constants.RedisPrefixTicker+feed, payload, ttl).Err(); err != nil {
		store.logger.Warn("ticker cache write failed", slog.Any("error", err))
	}
}
