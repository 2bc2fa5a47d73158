// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package newsletter handles mailing-list signups through an external
provider.

The provider owns the subscriber list; this package only validates the
address and forwards it. A repeat signup is reported back to the visitor as
success, since from their point of view the outcome is identical.
*/
package newsletter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/groupdex/groupdex/internal/platform/validate"
)

// ErrAlreadySubscribed is returned by providers when the address is already
// on the list. The service treats it as success.
var ErrAlreadySubscribed = errors.New("newsletter: already subscribed")

// Provider is the outbound contract to the mailing-list backend.
type Provider interface {
	Subscribe(context context.Context, email string) error
}

// Service contains the signup business logic.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a newsletter service instance.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

/*
Subscribe validates the address and forwards it to the provider.

An already-subscribed response from the provider is swallowed: the visitor
sees the same confirmation either way.
*/
func (service *Service) Subscribe(context context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	validator := validate.New().
		Required("email", email).
		Email("email", email)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.provider.Subscribe(context, email); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			service.logger.Info("newsletter signup repeated", slog.String("email", email))
			return nil
		}
		return err
	}

	service.logger.Info("newsletter signup accepted", slog.String("email", email))
	return nil
}
