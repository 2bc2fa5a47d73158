// Copyright (c) 2026 Groupdex. All rights reserved.

package taxonomy

import (
	"context"
	"log/slog"
	"strings"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/validate"
	"github.com/groupdex/groupdex/pkg/slug"
)

// Service contains the business logic for vocabulary management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a taxonomy service instance.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every term of a vocabulary, ordered by label.
func (service *Service) List(context context.Context, kind Kind) ([]Term, error) {
	if !kind.Valid() {
		return nil, apperr.NotFound("Vocabulary")
	}
	return service.repo.List(context, kind)
}

/*
Exists reports whether the value belongs to the named vocabulary.

This is the hook the submission flow uses to validate category and country
references; the kind arrives as a plain string there.
*/
func (service *Service) Exists(context context.Context, kind, value string) (bool, error) {
	k := Kind(kind)
	if !k.Valid() {
		return false, nil
	}
	return service.repo.Exists(context, k, value)
}

/*
Create validates and inserts a new vocabulary term.

The value is derived from the label when absent, so administrators can add
"South Africa" and get the stable value "south-africa" for free.
*/
func (service *Service) Create(context context.Context, kind Kind, term Term) (Term, error) {
	if !kind.Valid() {
		return Term{}, apperr.NotFound("Vocabulary")
	}

	term.Label = strings.TrimSpace(term.Label)
	if term.Value == "" {
		term.Value = slug.From(term.Label)
	}

	validator := validate.New().
		Required(FieldLabel, term.Label).
		MaxLen(FieldLabel, term.Label, 60).
		Required(FieldValue, term.Value).
		MaxLen(FieldValue, term.Value, 60)
	if err := validator.Err(); err != nil {
		return Term{}, err
	}

	if err := service.repo.Create(context, kind, term); err != nil {
		return Term{}, err
	}

	service.logger.Info("taxonomy term created",
		slog.String("kind", string(kind)),
		slog.String("value", term.Value),
	)
	return term, nil
}

// Delete removes a term. Entries already referencing the value keep it.
func (service *Service) Delete(context context.Context, kind Kind, value string) error {
	if !kind.Valid() {
		return apperr.NotFound("Vocabulary")
	}

	if err := service.repo.Delete(context, kind, value); err != nil {
		return err
	}

	service.logger.Info("taxonomy term deleted",
		slog.String("kind", string(kind)),
		slog.String("value", value),
	)
	return nil
}
