// Copyright (c) 2026 Groupdex. All rights reserved.

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
	"github.com/groupdex/groupdex/internal/platform/sec"
	"github.com/groupdex/groupdex/internal/platform/validate"
)

// accessTokenTTL is the back-office session length. The dashboard has no
// refresh flow; moderators sign in again when it lapses.
const accessTokenTTL = 12 * time.Hour

// TokenProvider signs admin access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service contains the sign-in business logic.
type Service struct {
	repo   Repository
	tokens TokenProvider
	logger *slog.Logger
}

// NewService creates an auth service instance.
func NewService(repo Repository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Session is a successful sign-in result.
type Session struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

/*
Login verifies credentials and issues an access token.

A wrong login and a wrong password produce the same error, so the endpoint
cannot be used to enumerate accounts. The bcrypt check still runs against a
cost-equivalent dummy hash when the account is unknown, keeping response
timing uniform.
*/
func (service *Service) Login(context context.Context, login, password string) (*Session, error) {
	login = strings.TrimSpace(login)

	validator := validate.New().
		Required(FieldLogin, login).
		Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.repo.FindByLogin(context, login)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			sec.CheckPasswordHash(password, dummyHash)
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.logger.Warn("failed sign-in attempt", slog.String("login", login))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokens.GenerateAccessToken(user.ID, user.Username, user.Role, accessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin signed in",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)

	return &Session{
		AccessToken: token,
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		User:        user,
	}, nil
}

// Me returns the account behind verified claims.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.repo.FindByID(context, userID)
}

// dummyHash is a bcrypt hash of a random string, burned when the login is
// unknown so both failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
