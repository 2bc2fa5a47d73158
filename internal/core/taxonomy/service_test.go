// Copyright (c) 2026 Groupdex. All rights reserved.

package taxonomy

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	terms map[Kind][]Term
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{terms: map[Kind][]Term{}}
}

func (f *fakeRepository) List(_ context.Context, kind Kind) ([]Term, error) {
	return f.terms[kind], nil
}

func (f *fakeRepository) Exists(_ context.Context, kind Kind, value string) (bool, error) {
	for _, term := range f.terms[kind] {
		if term.Value == value {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, kind Kind, term Term) error {
	for _, existing := range f.terms[kind] {
		if existing.Value == term.Value {
			return apperr.Conflict("Duplicate term")
		}
	}
	f.terms[kind] = append(f.terms[kind], term)
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, kind Kind, value string) error {
	for i, term := range f.terms[kind] {
		if term.Value == value {
			f.terms[kind] = append(f.terms[kind][:i], f.terms[kind][i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Term")
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestCreateDerivesValueFromLabel(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created, err := service.Create(context.Background(), KindCountry, Term{Label: "South Africa"})
	require.NoError(t, err)
	assert.Equal(t, "south-africa", created.Value)

	exists, err := service.Exists(context.Background(), "country", "south-africa")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateRejectsEmptyLabel(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), KindCategory, Term{Label: "   "})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateRejectsDuplicateValue(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Create(context.Background(), KindCategory, Term{Label: "Finance"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), KindCategory, Term{Label: "Finance"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

func TestExistsUnknownKindIsFalse(t *testing.T) {
	service := newTestService(newFakeRepository())

	exists, err := service.Exists(context.Background(), "flavor", "vanilla")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteDoesNotCascade(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Create(context.Background(), KindCategory, Term{Label: "Gaming"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), KindCategory, "gaming"))

	exists, err := service.Exists(context.Background(), "category", "gaming")
	require.NoError(t, err)
	assert.False(t, exists, "deleted terms must disappear from validation")
}

func TestListUnknownVocabulary(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.List(context.Background(), Kind("flavor"))
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
