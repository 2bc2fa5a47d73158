// Copyright (c) 2026 Groupdex. All rights reserved.

package settings

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	moderation    *Moderation
	layout        *Layout
	moderationErr error
}

func (f *fakeRepository) GetModeration(_ context.Context) (Moderation, error) {
	if f.moderationErr != nil {
		return Moderation{}, f.moderationErr
	}
	if f.moderation == nil {
		return Moderation{}, dberr.ErrNotFound
	}
	return *f.moderation, nil
}

func (f *fakeRepository) SaveModeration(_ context.Context, moderation Moderation) error {
	f.moderation = &moderation
	return nil
}

func (f *fakeRepository) GetLayout(_ context.Context) (Layout, error) {
	if f.layout == nil {
		return Layout{}, dberr.ErrNotFound
	}
	return *f.layout, nil
}

func (f *fakeRepository) SaveLayout(_ context.Context, layout Layout) error {
	f.layout = &layout
	return nil
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestCooldownUnitDuration(t *testing.T) {
	testCases := []struct {
		name     string
		unit     CooldownUnit
		value    int
		expected time.Duration
	}{
		{name: "hours", unit: UnitHours, value: 6, expected: 6 * time.Hour},
		{name: "days", unit: UnitDays, value: 2, expected: 48 * time.Hour},
		{name: "months are thirty days", unit: UnitMonths, value: 1, expected: 720 * time.Hour},
		{name: "unknown unit is zero", unit: CooldownUnit("weeks"), value: 3, expected: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.unit.Duration(testCase.value))
		})
	}
}

func TestGetModerationInitializesDefaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	moderation, err := service.GetModeration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultModeration(), moderation)
	require.NotNil(t, repo.moderation, "defaults must be persisted on first read")
	assert.Equal(t, DefaultModeration(), *repo.moderation)
}

func TestGetModerationReturnsStoredRecord(t *testing.T) {
	stored := DefaultModeration()
	stored.CooldownValue = 3
	stored.CooldownUnit = UnitDays
	repo := &fakeRepository{moderation: &stored}
	service := newTestService(repo)

	moderation, err := service.GetModeration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, moderation)
}

func TestGetModerationPropagatesStoreErrors(t *testing.T) {
	repo := &fakeRepository{moderationErr: apperr.Internal(nil)}
	service := newTestService(repo)

	_, err := service.GetModeration(context.Background())
	assert.Error(t, err)
}

func TestUpdateModerationValidation(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	invalid := DefaultModeration()
	invalid.CooldownValue = 0
	invalid.CooldownUnit = CooldownUnit("fortnights")

	_, err := service.UpdateModeration(context.Background(), invalid)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Nil(t, repo.moderation, "invalid settings must not be persisted")
}

func TestUpdateModerationPersists(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	updated := DefaultModeration()
	updated.CooldownEnabled = false
	updated.GroupsPerPage = 50

	result, err := service.UpdateModeration(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, updated, result)
	require.NotNil(t, repo.moderation)
	assert.Equal(t, 50, repo.moderation.GroupsPerPage)
}

func TestGetLayoutInitializesDefaults(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	layout, err := service.GetLayout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), layout)
	require.NotNil(t, repo.layout)
}

func TestUpdateLayoutRejectsEmptyNavLinks(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	layout := DefaultLayout()
	layout.NavLinks = append(layout.NavLinks, NavLink{Label: "", Href: "/blog"})

	_, err := service.UpdateLayout(context.Background(), layout)
	assert.Error(t, err)
}
