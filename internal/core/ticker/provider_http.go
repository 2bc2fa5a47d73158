// Copyright (c) 2026 Groupdex. All rights reserved.

package ticker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/groupdex/groupdex/pkg/slice"
)

// maxItems caps how many headlines one feed contributes.
const maxItems = 20

// HTTPProvider implements [Provider] against a JSON headline feed.
type HTTPProvider struct {
	client *http.Client
	url    string
	source string
}

// NewHTTPProvider creates a provider for one upstream feed URL.
func NewHTTPProvider(url, source string) *HTTPProvider {
	return &HTTPProvider{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
		source: source,
	}
}

// feedItem is the upstream's JSON shape.
type feedItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Fetch downloads and normalizes the feed.
func (provider *HTTPProvider) Fetch(context context.Context) ([]Item, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, provider.url, nil)
	if err != nil {
		return nil, fmt.Errorf("ticker: build request: %w", err)
	}

	response, err := provider.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("ticker: fetch %s: %w", provider.source, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticker: feed %s returned status %d", provider.source, response.StatusCode)
	}

	var raw []feedItem
	if err := json.NewDecoder(response.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ticker: decode %s: %w", provider.source, err)
	}

	kept := slice.Filter(raw, func(item feedItem) bool { return item.Title != "" })
	if len(kept) > maxItems {
		kept = kept[:maxItems]
	}

	items := slice.Map(kept, func(item feedItem) Item {
		return Item{Title: item.Title, URL: item.URL, Source: provider.source}
	})
	if items == nil {
		items = []Item{}
	}

	return items, nil
}
