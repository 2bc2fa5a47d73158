// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package ticker serves the homepage headline ticker from third-party sports
and news feeds.

The feeds are decorative: a failure upstream must never break the page, so
every error degrades to an empty item list. Successful fetches are cached
in Redis for ten minutes to keep the upstreams off the hot path.
*/
package ticker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// cacheTTL is how long a fetched feed is served from Redis.
const cacheTTL = 10 * time.Minute

// Feed names accepted by the public endpoint.
const (
	FeedSports = "sports"
	FeedNews   = "news"
)

// Item is a single headline in the ticker.
type Item struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}

// Provider fetches headlines from one upstream feed.
type Provider interface {
	Fetch(context context.Context) ([]Item, error)
}

// Store is the cache used between upstream fetches.
type Store interface {
	Get(context context.Context, feed string) ([]byte, bool)
	Set(context context.Context, feed string, payload []byte, ttl time.Duration)
}

// Service aggregates the configured feeds behind the cache.
type Service struct {
	providers map[string]Provider
	store     Store
	logger    *slog.Logger
}

// NewService creates a ticker service over the named providers.
func NewService(providers map[string]Provider, store Store, logger *slog.Logger) *Service {
	return &Service{
		providers: providers,
		store:     store,
		logger:    logger,
	}
}

/*
Items returns the headlines for one feed.

Never fails: unknown feeds, upstream errors and cache corruption all
degrade to an empty list, logged server-side.
*/
func (service *Service) Items(context context.Context, feed string) []Item {
	provider, ok := service.providers[feed]
	if !ok {
		return []Item{}
	}

	if payload, hit := service.store.Get(context, feed); hit {
		var items []Item
		if err := json.Unmarshal(payload, &items); err == nil {
			return items
		}
		service.logger.Warn("ticker cache payload corrupt", slog.String("feed", feed))
	}

	items, err := provider.Fetch(context)
	if err != nil {
		service.logger.Warn("ticker feed fetch failed",
			slog.String("feed", feed),
			slog.Any("error", err),
		)
		return []Item{}
	}
	if items == nil {
		items = []Item{}
	}

	if payload, err := json.Marshal(items); err == nil {
		service.store.Set(context, feed, payload, cacheTTL)
	}

	return items
}
