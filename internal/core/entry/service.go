// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/groupdex/groupdex/internal/core/settings"
	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/constants"
	"github.com/groupdex/groupdex/internal/platform/dberr"
	"github.com/groupdex/groupdex/internal/platform/validate"
	"github.com/groupdex/groupdex/pkg/slug"
	"github.com/groupdex/groupdex/pkg/uuid"
)

// SettingsProvider supplies the current moderation settings per operation.
type SettingsProvider interface {
	GetModeration(context context.Context) (settings.Moderation, error)
}

// TaxonomyChecker verifies that a submitted category or country value exists.
type TaxonomyChecker interface {
	Exists(context context.Context, kind, value string) (bool, error)
}

// Service contains the business logic for submissions, ratings, clicks and
// the back-office entry operations.
type Service struct {
	repo     Repository
	settings SettingsProvider
	taxonomy TaxonomyChecker
	cache    Cache
	logger   *slog.Logger
}

// NewService creates an entry service instance.
func NewService(repo Repository, settings SettingsProvider, taxonomy TaxonomyChecker, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		taxonomy: taxonomy,
		cache:    cache,
		logger:   logger,
	}
}

// # Submission

// SubmitInput is the payload of the public submission form and the admin
// edit form. GroupID is set only for administrator edit-in-place.
type SubmitInput struct {
	GroupID     string  `json:"group_id,omitempty"`
	Link        string  `json:"link"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Country     string  `json:"country"`
	Tags        string  `json:"tags,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	ImageHint   *string `json:"image_hint,omitempty"`
}

/*
Submit runs the submission state machine.

Three cases, decided in order:
 1. GroupID present → administrator edit-in-place, counters untouched.
 2. Link already known → resubmission: cooldown check, then bump.
 3. Otherwise → create a new entry with fresh counters.

Returns:
  - *Entry: The updated or created entry
  - error: Validation errors per field; an UNPROCESSABLE AppError with the
    remaining wait time when the cooldown has not elapsed
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Entry, error) {
	input.Link = normalizeLink(input.Link)

	if err := service.validateSubmission(context, input); err != nil {
		return nil, err
	}

	content := Content{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    input.ImageURL,
		ImageHint:   input.ImageHint,
		Category:    input.Category,
		Country:     input.Country,
		Tags:        SanitizeTags(input.Tags),
	}

	// Case 1: administrator edit-in-place.
	if input.GroupID != "" {
		return service.adminEdit(context, input.GroupID, content)
	}

	// Case 2: resubmission of a known link.
	existing, err := service.repo.FindByLink(context, input.Link)
	if err != nil && !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return service.resubmit(context, existing, content)
	}

	// Case 3: new entry.
	return service.create(context, input, content)
}

// adminEdit updates content fields only. No cooldown, no counter changes.
func (service *Service) adminEdit(context context.Context, id string, content Content) (*Entry, error) {
	updated, err := service.repo.UpdateContent(context, id, content)
	if err != nil {
		return nil, err
	}

	service.invalidate(context, updated)
	service.logger.Info("entry edited",
		slog.String("entry_id", updated.ID),
	)
	return updated, nil
}

// resubmit enforces the cooldown and bumps the existing entry.
func (service *Service) resubmit(context context.Context, existing *Entry, content Content) (*Entry, error) {
	moderation, err := service.settings.GetModeration(context)
	if err != nil {
		return nil, err
	}

	if moderation.CooldownEnabled && !existing.LastSubmittedAt.IsZero() {
		elapsed := time.Since(existing.LastSubmittedAt)
		period := moderation.CooldownUnit.Duration(moderation.CooldownValue)

		if elapsed < period {
			hoursLeft := int(math.Ceil((period - elapsed).Hours()))
			return nil, apperr.Unprocessable(fmt.Sprintf(
				"This link was submitted recently. You can submit it again in about %d more hour(s).",
				hoursLeft,
			))
		}
	}

	bumped, err := service.repo.Bump(context, existing.ID, content)
	if err != nil {
		return nil, err
	}

	service.invalidate(context, bumped)
	service.logger.Info("entry bumped",
		slog.String("entry_id", bumped.ID),
		slog.Int("submission_count", bumped.SubmissionCount),
	)
	return bumped, nil
}

// create inserts a brand-new entry with fresh counters.
func (service *Service) create(context context.Context, input SubmitInput, content Content) (*Entry, error) {
	now := time.Now().UTC()
	id := uuid.New()

	entry := &Entry{
		ID:              id,
		Link:            input.Link,
		Type:            Type(input.Type),
		Slug:            buildSlug(content.Title, id),
		Title:           content.Title,
		Description:     content.Description,
		ImageURL:        content.ImageURL,
		ImageHint:       content.ImageHint,
		Category:        content.Category,
		Country:         content.Country,
		Tags:            content.Tags,
		Clicks:          0,
		SubmissionCount: 1,
		Featured:        false,
		CreatedAt:       now,
		LastSubmittedAt: now,
	}

	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	service.cache.InvalidateListings(context)
	service.logger.Info("entry created",
		slog.String("entry_id", entry.ID),
		slog.String("category", entry.Category),
		slog.String("type", string(entry.Type)),
	)
	return entry, nil
}

// validateSubmission applies the field rules shared by all submission cases.
func (service *Service) validateSubmission(context context.Context, input SubmitInput) error {
	validator := validate.New().
		Required(FieldLink, input.Link).
		URL(FieldLink, input.Link).
		OneOf(FieldType, input.Type, string(TypeGroup), string(TypeChannel)).
		Required(FieldTitle, input.Title).
		MinLen(FieldTitle, strings.TrimSpace(input.Title), 5).
		MaxLen(FieldTitle, input.Title, 100).
		Required(FieldDescription, input.Description).
		MinLen(FieldDescription, strings.TrimSpace(input.Description), 20).
		MaxLen(FieldDescription, input.Description, 2000).
		Required(FieldCategory, input.Category).
		Required(FieldCountry, input.Country)

	// The canonical invite prefix depends on the declared type.
	switch Type(input.Type) {
	case TypeGroup:
		validator.Prefix(FieldLink, input.Link, constants.GroupInvitePrefix,
			"Must be a valid group invite link")
	case TypeChannel:
		validator.Prefix(FieldLink, input.Link, constants.ChannelInvitePrefix,
			"Must be a valid channel link")
	}

	if input.GroupID != "" {
		validator.UUID(FieldGroupID, input.GroupID)
	}

	// Category and country must reference live taxonomy values. Skipped when
	// the field rules above already failed for them.
	if input.Category != "" {
		exists, err := service.taxonomy.Exists(context, "category", input.Category)
		if err != nil {
			return err
		}
		validator.Custom(FieldCategory, !exists, "Unknown category")
	}
	if input.Country != "" {
		exists, err := service.taxonomy.Exists(context, "country", input.Country)
		if err != nil {
			return err
		}
		validator.Custom(FieldCountry, !exists, "Unknown country")
	}

	return validator.Err()
}

// # Retrieval

// List returns a page of entries plus the total match count.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// Get fetches one entry by id or slug. UUIDs are 36 characters; anything
// else is treated as a slug.
func (service *Service) Get(context context.Context, idOrSlug string) (*Entry, error) {
	if len(idOrSlug) == 36 {
		return service.repo.FindByID(context, idOrSlug)
	}
	return service.repo.FindBySlug(context, idOrSlug)
}

// # Engagement

/*
RegisterClick increments the click counter and returns the invite link so
the handler can redirect the visitor.
*/
func (service *Service) RegisterClick(context context.Context, id string) (string, error) {
	link, err := service.repo.IncrementClicks(context, id)
	if err != nil {
		return "", err
	}

	service.cache.InvalidateEntry(context, id)
	return link, nil
}

// # Back-Office

// SetFeatured toggles the homepage-featured flag.
func (service *Service) SetFeatured(context context.Context, id string, featured bool) (*Entry, error) {
	updated, err := service.repo.SetFeatured(context, id, featured)
	if err != nil {
		return nil, err
	}

	service.invalidate(context, updated)
	service.logger.Info("entry featured flag changed",
		slog.String("entry_id", id),
		slog.Bool("featured", featured),
	)
	return updated, nil
}

// Delete removes an entry permanently.
func (service *Service) Delete(context context.Context, id string) error {
	entry, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.invalidate(context, entry)
	service.logger.Info("entry deleted", slog.String("entry_id", id))
	return nil
}

// # Helpers

// invalidate drops the cached listings plus the entry's detail payloads.
func (service *Service) invalidate(context context.Context, entry *Entry) {
	service.cache.InvalidateListings(context)
	service.cache.InvalidateEntry(context, entry.ID, entry.Slug)
}

// normalizeLink canonicalizes an invite link for deduplication: surrounding
// whitespace and a trailing slash are insignificant.
func normalizeLink(link string) string {
	return strings.TrimSuffix(strings.TrimSpace(link), "/")
}

// buildSlug derives a unique, stable URL slug from the title. The short id
// suffix keeps same-titled entries distinct.
func buildSlug(title, id string) string {
	base := slug.From(title)
	if base == "" {
		base = "entry"
	}
	return base + "-" + id[:8]
}
