// Copyright (c) 2026 Groupdex. All rights reserved.

package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// HTTPProvider implements [Provider] against a JSON subscription API.
type HTTPProvider struct {
	client *http.Client
	url    string
	apiKey string
}

// NewHTTPProvider creates a provider for the configured subscription endpoint.
func NewHTTPProvider(url, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
		apiKey: apiKey,
	}
}

// subscribeRequest is the provider's expected JSON body.
type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe posts the address to the provider.
func (provider *HTTPProvider) Subscribe(context context.Context, email string) error {
	payload, err := json.Marshal(subscribeRequest{Email: email})
	if err != nil {
		return fmt.Errorf("newsletter: encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, provider.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("newsletter: build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+provider.apiKey)

	response, err := provider.client.Do(request)
	if err != nil {
		return apperr.Internal(fmt.Errorf("newsletter: provider unreachable: %w", err))
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusOK, response.StatusCode == http.StatusCreated:
		return nil
	case response.StatusCode == http.StatusConflict:
		return ErrAlreadySubscribed
	default:
		return apperr.Internal(fmt.Errorf("newsletter: provider returned status %d", response.StatusCode))
	}
}
