// Copyright (c) 2026 Groupdex. All rights reserved.

package preview

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

type fakeGenerator struct{}

func (fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return "https://cdn.example.com/generated.png", nil
}

func newTestService(fetcher Fetcher) *Service {
	return NewService(fetcher, fakeGenerator{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestFetchRejectsInvalidURL(t *testing.T) {
	service := newTestService(NewHTTPFetcher("http://unused.example.com"))

	for _, url := range []string{"", "chat.whatsapp.com/abc", "ftp://example.com"} {
		_, err := service.Fetch(context.Background(), url)
		require.Error(t, err, "url %q must be rejected", url)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}
}

func TestHTTPFetcherDecodesMetadata(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "https://chat.whatsapp.com/AbC", request.URL.Query().Get("url"))
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"title":"Trading Group","description":"Daily signals","images":["https://img.example.com/1.png"]}`))
	}))
	defer upstream.Close()

	service := newTestService(NewHTTPFetcher(upstream.URL))

	preview, err := service.Fetch(context.Background(), "https://chat.whatsapp.com/AbC")
	require.NoError(t, err)
	assert.Equal(t, "Trading Group", preview.Title)
	assert.Len(t, preview.Images, 1)
}

func TestHTTPFetcherSurfacesUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	service := newTestService(NewHTTPFetcher(upstream.URL))

	_, err := service.Fetch(context.Background(), "https://chat.whatsapp.com/AbC")
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
}

func TestGenerateRequiresText(t *testing.T) {
	service := newTestService(NewHTTPFetcher("http://unused.example.com"))

	_, err := service.Generate(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	imageURL, err := service.Generate(context.Background(), "Trading Group", "Daily signals for everyone")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/generated.png", imageURL)
}
