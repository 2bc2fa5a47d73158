// Copyright (c) 2026 Groupdex. All rights reserved.

package report

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/groupdex/groupdex/internal/platform/validate"
	"github.com/groupdex/groupdex/pkg/uuid"
)

// minOtherReasonLength is the shortest accepted detail for "Other" reports.
const minOtherReasonLength = 10

// Service contains the business logic for report intake and resolution.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a report service instance.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput is the payload of the public report form.
type CreateInput struct {
	GroupID     string `json:"group_id"`
	GroupTitle  string `json:"group_title"`
	Reason      string `json:"reason"`
	OtherReason string `json:"other_reason,omitempty"`
}

/*
Create validates and appends a new report.

When the reason is "Other", the trimmed detail must be at least ten
characters and is composed into the stored reason as "Other: <detail>".
The denormalized title is taken from the client as-is.
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Report, error) {
	reason := strings.TrimSpace(input.Reason)
	detail := strings.TrimSpace(input.OtherReason)

	validator := validate.New().
		Required(FieldGroupID, input.GroupID).
		UUID(FieldGroupID, input.GroupID).
		OneOf(FieldReason, reason, Reasons...)

	if reason == ReasonOther {
		validator.MinLen(FieldOtherReason, detail, minOtherReasonLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if reason == ReasonOther {
		reason = ReasonOther + ": " + detail
	}

	report := &Report{
		ID:         uuid.New(),
		GroupID:    input.GroupID,
		GroupTitle: strings.TrimSpace(input.GroupTitle),
		Reason:     reason,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := service.repo.Create(context, report); err != nil {
		return nil, err
	}

	service.logger.Info("report created",
		slog.String("report_id", report.ID),
		slog.String("group_id", report.GroupID),
	)
	return report, nil
}

// List returns a page of reports, newest first.
func (service *Service) List(context context.Context, limit, offset int) ([]*Report, int, error) {
	return service.repo.List(context, limit, offset)
}

// Resolve removes a report after a moderator has acted on it.
func (service *Service) Resolve(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("report resolved", slog.String("report_id", id))
	return nil
}
