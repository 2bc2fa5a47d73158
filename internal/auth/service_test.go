// Copyright (c) 2026 Groupdex. All rights reserved.

package auth

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
	"github.com/groupdex/groupdex/internal/platform/sec"
)

// fakeRepository holds a single account.
type fakeRepository struct {
	user *User
}

func (f *fakeRepository) FindByLogin(_ context.Context, login string) (*User, error) {
	if f.user != nil && (strings.EqualFold(f.user.Username, login) || strings.EqualFold(f.user.Email, login)) {
		return f.user, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, dberr.ErrNotFound
}

// fakeTokens issues a predictable token.
type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func seededUser(t *testing.T, password string) *User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	return &User{
		ID:           "0191e2a3-0000-7000-8000-0000000000aa",
		Username:     "moderator",
		Email:        "mod@groupdex.app",
		PasswordHash: hash,
		Role:         string(sec.RoleAdmin),
	}
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, fakeTokens{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestLoginSucceedsWithUsernameOrEmail(t *testing.T) {
	user := seededUser(t, "correct horse battery staple")
	service := newTestService(&fakeRepository{user: user})

	for _, login := range []string{"moderator", "MOD@groupdex.app"} {
		session, err := service.Login(context.Background(), login, "correct horse battery staple")
		require.NoError(t, err, "login %q", login)
		assert.Equal(t, "token-for-"+user.ID, session.AccessToken)
		assert.Equal(t, user.ID, session.User.ID)
		assert.Positive(t, session.ExpiresIn)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := seededUser(t, "correct horse battery staple")
	service := newTestService(&fakeRepository{user: user})

	_, err := service.Login(context.Background(), "moderator", "wrong password")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

// Unknown accounts and wrong passwords must be indistinguishable.
func TestLoginUnknownAccountSameError(t *testing.T) {
	user := seededUser(t, "correct horse battery staple")
	service := newTestService(&fakeRepository{user: user})

	_, wrongPassword := service.Login(context.Background(), "moderator", "wrong password")
	_, unknownAccount := service.Login(context.Background(), "nobody", "wrong password")

	require.Error(t, wrongPassword)
	require.Error(t, unknownAccount)
	assert.Equal(t, wrongPassword.Error(), unknownAccount.Error())
}

func TestLoginValidatesInput(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.Login(context.Background(), "  ", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
