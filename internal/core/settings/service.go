// Copyright (c) 2026 Groupdex. All rights reserved.

package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/groupdex/groupdex/internal/platform/dberr"
	"github.com/groupdex/groupdex/internal/platform/validate"
)

// Service contains the business logic for reading and updating the
// configuration singletons.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a settings service instance.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
GetModeration returns the current moderation settings.

When the singleton has never been written, the defaults are persisted and
returned. A lost persistence race against a concurrent first read is
harmless: both writers store identical defaults.
*/
func (service *Service) GetModeration(context context.Context) (Moderation, error) {
	moderation, err := service.repo.GetModeration(context)
	if err == nil {
		return moderation, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return Moderation{}, err
	}

	defaults := DefaultModeration()
	if saveErr := service.repo.SaveModeration(context, defaults); saveErr != nil {
		return Moderation{}, saveErr
	}

	service.logger.Info("moderation settings initialized with defaults")
	return defaults, nil
}

/*
UpdateModeration validates and persists the full moderation record.

Partial updates are not supported: the back-office always submits the
complete form state.
*/
func (service *Service) UpdateModeration(context context.Context, moderation Moderation) (Moderation, error) {
	validator := validate.New().
		Range(FieldCooldownValue, moderation.CooldownValue, 1, 10000).
		OneOf(FieldCooldownUnit, string(moderation.CooldownUnit),
			string(UnitHours), string(UnitDays), string(UnitMonths)).
		Range(FieldGroupsPerPage, moderation.GroupsPerPage, 1, 100).
		OneOf(FieldFeatured, string(moderation.FeaturedGroupsDisplay),
			string(FeaturedCarousel), string(FeaturedGrid), string(FeaturedHidden))

	if validator.HasErrors() {
		return Moderation{}, validator.Err()
	}

	if err := service.repo.SaveModeration(context, moderation); err != nil {
		return Moderation{}, err
	}

	service.logger.Info("moderation settings updated",
		slog.Bool("cooldown_enabled", moderation.CooldownEnabled),
		slog.Int("cooldown_value", moderation.CooldownValue),
		slog.String("cooldown_unit", string(moderation.CooldownUnit)),
	)

	return moderation, nil
}

// GetLayout returns the current layout settings, persisting defaults on the
// first ever read.
func (service *Service) GetLayout(context context.Context) (Layout, error) {
	layout, err := service.repo.GetLayout(context)
	if err == nil {
		return layout, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return Layout{}, err
	}

	defaults := DefaultLayout()
	if saveErr := service.repo.SaveLayout(context, defaults); saveErr != nil {
		return Layout{}, saveErr
	}

	service.logger.Info("layout settings initialized with defaults")
	return defaults, nil
}

// UpdateLayout persists the full layout record.
func (service *Service) UpdateLayout(context context.Context, layout Layout) (Layout, error) {
	validator := validate.New()
	for _, link := range layout.NavLinks {
		validator.Required("nav_links.label", link.Label).
			Required("nav_links.href", link.Href)
	}
	if validator.HasErrors() {
		return Layout{}, validator.Err()
	}

	if err := service.repo.SaveLayout(context, layout); err != nil {
		return Layout{}, err
	}

	service.logger.Info("layout settings updated")
	return layout, nil
}
