// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/groupdex/groupdex/internal/platform/constants"
)

// listingTTL bounds staleness for cached listing pages; mutations also
// invalidate eagerly, so this is a backstop.
const listingTTL = 5 * time.Minute

// Cache is the read-through cache used by the listing and detail endpoints.
//
// Failures are absorbed: a broken cache degrades to direct database reads,
// never to request errors.
type Cache interface {
	GetListing(context context.Context, key string) ([]byte, bool)
	SetListing(context context.Context, key string, payload []byte)
	GetDetail(context context.Context, key string) ([]byte, bool)
	SetDetail(context context.Context, key string, payload []byte)
	InvalidateListings(context context.Context)
	InvalidateEntry(context context.Context, keys ...string)
}

// RedisCache implements [Cache] on go-redis.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a Redis backed entry cache.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

// GetListing fetches a cached listing payload by its query key.
func (cache *RedisCache) GetListing(context context.Context, key string) ([]byte, bool) {
	payload, err := cache.client.Get(context, constants.RedisPrefixEntryList+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("entry cache read failed", slog.Any("error", err))
		}
		return nil, false
	}
	return payload, true
}

// SetListing stores a listing payload under its query key.
func (cache *RedisCache) SetListing(context context.Context, key string, payload []byte) {
	if err := cache.client.Set(context, constants.RedisPrefixEntryList+key, payload, listingTTL).Err(); err != nil {
		cache.logger.Warn("entry cache write failed", slog.Any("error", err))
	}
}

// GetDetail fetches a cached detail payload by id or slug.
func (cache *RedisCache) GetDetail(context context.Context, key string) ([]byte, bool) {
	payload, err := cache.client.Get(context, constants.RedisPrefixEntryDetail+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("entry cache read failed", slog.Any("error", err))
		}
		return nil, false
	}
	return payload, true
}

// SetDetail stores a detail payload under an id or slug key.
func (cache *RedisCache) SetDetail(context context.Context, key string, payload []byte) {
	if err := cache.client.Set(context, constants.RedisPrefixEntryDetail+key, payload, listingTTL).Err(); err != nil {
		cache.logger.Warn("entry cache write failed", slog.Any("error", err))
	}
}

// InvalidateListings drops every cached listing page. Called after any
// mutation that changes what listings should show.
func (cache *RedisCache) InvalidateListings(context context.Context) {
	iter := cache.client.Scan(context, 0, constants.RedisPrefixEntryList+"*", 100).Iterator()
	for iter.Next(context) {
		if err := cache.client.Del(context, iter.Val()).Err(); err != nil {
			cache.logger.Warn("entry cache invalidation failed",
				slog.String("key", iter.Val()),
				slog.Any("error", err),
			)
		}
	}
	if err := iter.Err(); err != nil {
		cache.logger.Warn("entry cache scan failed", slog.Any("error", err))
	}
}

// InvalidateEntry drops the cached detail payloads for the given lookup keys
// (id and slug are cached independently).
func (cache *RedisCache) InvalidateEntry(context context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := cache.client.Del(context, constants.RedisPrefixEntryDetail+key).Err(); err != nil {
			cache.logger.Warn("entry detail invalidation failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}
