// Copyright (c) 2026 Groupdex. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/ctxutil"
	"github.com/groupdex/groupdex/internal/platform/sec"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

func TestLogger_FallbackToDefault(t *testing.T) {
	// Unset context must return the process-wide default, never nil.
	logger := ctxutil.GetLogger(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, slog.Default(), logger)
}

func TestLogger_RoundTrip(t *testing.T) {
	custom := slog.Default().With(slog.String("scope", "test"))
	ctx := ctxutil.WithLogger(context.Background(), custom)

	assert.Equal(t, custom, ctxutil.GetLogger(ctx))
}

func TestAuthUser_RoundTrip(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))

	claims := &sec.AuthClaims{UserID: "u-1", Username: "root", Role: string(sec.RoleAdmin)}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)
}
