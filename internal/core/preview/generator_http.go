// Copyright (c) 2026 Groupdex. All rights reserved.

package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// HTTPGenerator implements [Generator] against a generative image API.
type HTTPGenerator struct {
	client *http.Client
	url    string
	apiKey string
}

// NewHTTPGenerator creates a generator for the configured image API.
func NewHTTPGenerator(url, apiKey string) *HTTPGenerator {
	return &HTTPGenerator{
		// Image generation is slow; allow well over the usual API timeout.
		client: &http.Client{Timeout: 60 * time.Second},
		url:    url,
		apiKey: apiKey,
	}
}

// generateRequest is the image API's expected JSON body.
type generateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// generateResponse is the image API's JSON reply.
type generateResponse struct {
	ImageURL string `json:"image_url"`
}

// Generate requests a cover image and returns its hosted URL.
func (generator *HTTPGenerator) Generate(context context.Context, title, description string) (string, error) {
	payload, err := json.Marshal(generateRequest{Title: title, Description: description})
	if err != nil {
		return "", fmt.Errorf("preview: encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, generator.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("preview: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+generator.apiKey)

	response, err := generator.client.Do(request)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("preview: generation failed: %w", err))
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", apperr.Internal(fmt.Errorf("preview: image api returned status %d", response.StatusCode))
	}

	var result generateResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", apperr.Internal(fmt.Errorf("preview: decode response: %w", err))
	}
	if result.ImageURL == "" {
		return "", apperr.Internal(fmt.Errorf("preview: image api returned no url"))
	}

	return result.ImageURL, nil
}
