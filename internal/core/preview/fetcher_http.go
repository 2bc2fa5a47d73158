// Copyright (c) 2026 Groupdex. All rights reserved.

package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// HTTPFetcher implements [Fetcher] against a metadata scraping API.
type HTTPFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher creates a fetcher for the configured scraping endpoint.
func NewHTTPFetcher(url string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
	}
}

// Fetch queries the scraping API for the target URL's metadata.
func (fetcher *HTTPFetcher) Fetch(context context.Context, target string) (*LinkPreview, error) {
	endpoint := fetcher.url + "?url=" + neturl.QueryEscape(target)

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("preview: build request: %w", err)
	}

	response, err := fetcher.client.Do(request)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("preview: fetch failed: %w", err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, apperr.Internal(fmt.Errorf("preview: api returned status %d", response.StatusCode))
	}

	preview := &LinkPreview{}
	if err := json.NewDecoder(response.Body).Decode(preview); err != nil {
		return nil, apperr.Internal(fmt.Errorf("preview: decode response: %w", err))
	}

	return preview, nil
}
