// Copyright (c) 2026 Groupdex. All rights reserved.

package newsletter

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// fakeProvider records signups and can simulate provider outcomes.
type fakeProvider struct {
	subscribed []string
	err        error
}

func (f *fakeProvider) Subscribe(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.subscribed = append(f.subscribed, email)
	return nil
}

func newTestService(provider *fakeProvider) *Service {
	return NewService(provider, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestSubscribeNormalizesAddress(t *testing.T) {
	provider := &fakeProvider{}
	service := newTestService(provider)

	require.NoError(t, service.Subscribe(context.Background(), "  Reader@Example.COM "))
	require.Len(t, provider.subscribed, 1)
	assert.Equal(t, "reader@example.com", provider.subscribed[0])
}

func TestSubscribeRejectsInvalidAddress(t *testing.T) {
	provider := &fakeProvider{}
	service := newTestService(provider)

	err := service.Subscribe(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, provider.subscribed, "invalid addresses must not reach the provider")
}

// A repeat signup reads as success to the visitor.
func TestSubscribeTreatsRepeatAsSuccess(t *testing.T) {
	provider := &fakeProvider{err: ErrAlreadySubscribed}
	service := newTestService(provider)

	assert.NoError(t, service.Subscribe(context.Background(), "reader@example.com"))
}

func TestSubscribePropagatesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: apperr.Internal(nil)}
	service := newTestService(provider)

	assert.Error(t, service.Subscribe(context.Background(), "reader@example.com"))
}
