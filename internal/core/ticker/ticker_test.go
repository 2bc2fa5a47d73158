// Copyright (c) 2026 Groupdex. All rights reserved.

package ticker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeProvider serves canned items or a canned error, counting calls.
type fakeProvider struct {
	items []Item
	err   error
	calls int
}

func (f *fakeProvider) Fetch(_ context.Context) ([]Item, error) {
	f.calls++
	return f.items, f.err
}

// memoryStore is an in-process Store for tests.
type memoryStore struct {
	payloads map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{payloads: map[string][]byte{}}
}

func (m *memoryStore) Get(_ context.Context, feed string) ([]byte, bool) {
	payload, ok := m.payloads[feed]
	return payload, ok
}

func (m *memoryStore) Set(_ context.Context, feed string, payload []byte, _ time.Duration) {
	m.payloads[feed] = payload
}

func newTestService(providers map[string]Provider, store Store) *Service {
	return NewService(providers, store, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestItemsFetchesAndCaches(t *testing.T) {
	provider := &fakeProvider{items: []Item{{Title: "Kickoff", URL: "https://example.com/1", Source: "sports"}}}
	store := newMemoryStore()
	service := newTestService(map[string]Provider{FeedSports: provider}, store)

	first := service.Items(context.Background(), FeedSports)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, provider.calls)

	// Second read is served from cache.
	second := service.Items(context.Background(), FeedSports)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

// A broken upstream degrades to an empty ticker, never an error.
func TestItemsUpstreamFailureIsEmpty(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	service := newTestService(map[string]Provider{FeedNews: provider}, newMemoryStore())

	items := service.Items(context.Background(), FeedNews)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemsUnknownFeedIsEmpty(t *testing.T) {
	service := newTestService(map[string]Provider{}, newMemoryStore())

	assert.Empty(t, service.Items(context.Background(), "weather"))
}

func TestItemsCorruptCacheRefetches(t *testing.T) {
	provider := &fakeProvider{items: []Item{{Title: "Headline", URL: "https://example.com/2"}}}
	store := newMemoryStore()
	store.payloads[FeedNews] = []byte("{not json")
	service := newTestService(map[string]Provider{FeedNews: provider}, store)

	items := service.Items(context.Background(), FeedNews)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, provider.calls)
}
