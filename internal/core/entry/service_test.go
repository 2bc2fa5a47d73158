// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/core/settings"
	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/constants"
	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// # Test Doubles

// fakeRepository is an in-memory Repository. AddRating takes the same lock
// for its whole read-modify-write, mirroring the row lock the real store
// acquires.
type fakeRepository struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: map[string]*Entry{}}
}

func (f *fakeRepository) put(entry *Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *entry
	f.entries[entry.ID] = &clone
}

func (f *fakeRepository) get(id string) *Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[id]; ok {
		clone := *entry
		return &clone
	}
	return nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter, limit, _ int) ([]*Entry, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []*Entry
	for _, entry := range f.entries {
		clone := *entry
		entries = append(entries, &clone)
		if len(entries) == limit {
			break
		}
	}
	return entries, len(f.entries), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Entry, error) {
	if entry := f.get(id); entry != nil {
		return entry, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entry := range f.entries {
		if entry.Slug == slug {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindByLink(_ context.Context, link string) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entry := range f.entries {
		if entry.Link == link {
			clone := *entry
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, entry *Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.entries {
		if existing.Link == entry.Link {
			return apperr.Conflict("Duplicate link")
		}
	}
	clone := *entry
	f.entries[entry.ID] = &clone
	return nil
}

func (f *fakeRepository) UpdateContent(_ context.Context, id string, content Content) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	applyContent(entry, content)
	clone := *entry
	return &clone, nil
}

func (f *fakeRepository) Bump(_ context.Context, id string, content Content) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	applyContent(entry, content)
	entry.SubmissionCount++
	entry.LastSubmittedAt = time.Now().UTC()
	clone := *entry
	return &clone, nil
}

func (f *fakeRepository) IncrementClicks(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return "", dberr.ErrNotFound
	}
	entry.Clicks++
	return entry.Link, nil
}

func (f *fakeRepository) AddRating(_ context.Context, id string, rating int) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return 0, 0, dberr.ErrNotFound
	}
	entry.TotalRating += rating
	entry.RatingCount++
	return entry.TotalRating, entry.RatingCount, nil
}

func (f *fakeRepository) SetFeatured(_ context.Context, id string, featured bool) (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	entry.Featured = featured
	clone := *entry
	return &clone, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

func applyContent(entry *Entry, content Content) {
	entry.Title = content.Title
	entry.Description = content.Description
	entry.ImageURL = content.ImageURL
	entry.ImageHint = content.ImageHint
	entry.Category = content.Category
	entry.Country = content.Country
	entry.Tags = content.Tags
}

// fakeSettings serves a fixed moderation record.
type fakeSettings struct {
	moderation settings.Moderation
}

func (f *fakeSettings) GetModeration(_ context.Context) (settings.Moderation, error) {
	return f.moderation, nil
}

// fakeTaxonomy accepts any value unless a restricted set is configured.
type fakeTaxonomy struct {
	known map[string]bool
}

func (f *fakeTaxonomy) Exists(_ context.Context, kind, value string) (bool, error) {
	if f.known == nil {
		return true, nil
	}
	return f.known[kind+":"+value], nil
}

// nopCache satisfies Cache without storing anything.
type nopCache struct{}

func (nopCache) GetListing(_ context.Context, _ string) ([]byte, bool) { return nil, false }
func (nopCache) SetListing(_ context.Context, _ string, _ []byte)      {}
func (nopCache) GetDetail(_ context.Context, _ string) ([]byte, bool)  { return nil, false }
func (nopCache) SetDetail(_ context.Context, _ string, _ []byte)       {}
func (nopCache) InvalidateListings(_ context.Context)                  {}
func (nopCache) InvalidateEntry(_ context.Context, _ ...string)        {}

// # Fixtures

func newTestService(repo *fakeRepository, moderation settings.Moderation) *Service {
	return NewService(
		repo,
		&fakeSettings{moderation: moderation},
		&fakeTaxonomy{},
		nopCache{},
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
	)
}

func validInput() SubmitInput {
	return SubmitInput{
		Link:        constants.GroupInvitePrefix + "AbCdEfGh123",
		Type:        string(TypeGroup),
		Title:       "Crypto Trading Signals",
		Description: "Daily market analysis and trade ideas for everyone.",
		Category:    "finance",
		Country:     "us",
		Tags:        "crypto, trading",
	}
}

func seededEntry(repo *fakeRepository, lastSubmittedAt time.Time) *Entry {
	entry := &Entry{
		ID:              "0191e2a3-0000-7000-8000-000000000001",
		Link:            constants.GroupInvitePrefix + "AbCdEfGh123",
		Type:            TypeGroup,
		Slug:            "crypto-trading-signals-0191e2a3",
		Title:           "Crypto Trading Signals",
		Description:     "Daily market analysis and trade ideas for everyone.",
		Category:        "finance",
		Country:         "us",
		Clicks:          7,
		SubmissionCount: 2,
		TotalRating:     12,
		RatingCount:     4,
		CreatedAt:       lastSubmittedAt.Add(-30 * 24 * time.Hour),
		LastSubmittedAt: lastSubmittedAt,
	}
	repo.put(entry)
	return entry
}

// # Submission Tests

func TestSubmitCreatesEntryWithFreshCounters(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())

	created, err := service.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, created.SubmissionCount)
	assert.Equal(t, 0, created.Clicks)
	assert.Equal(t, 0, created.TotalRating)
	assert.Equal(t, 0, created.RatingCount)
	assert.False(t, created.Featured)
	assert.Equal(t, created.CreatedAt, created.LastSubmittedAt)
	assert.NotEmpty(t, created.Slug)
	assert.Equal(t, []string{"crypto", "trading"}, created.Tags)
}

func TestSubmitRejectsWithinCooldown(t *testing.T) {
	repo := newFakeRepository()
	moderation := settings.DefaultModeration()
	moderation.CooldownValue = 6
	moderation.CooldownUnit = settings.UnitHours
	service := newTestService(repo, moderation)

	// Last submitted three hours ago: three of six hours remain.
	before := seededEntry(repo, time.Now().UTC().Add(-3*time.Hour))

	input := validInput()
	input.Title = "A Completely Different Title"

	_, err := service.Submit(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusUnprocessableEntity, appError.HTTPStatus)
	assert.Contains(t, appError.Message, "3 more hour(s)")

	// Rejection must not mutate anything.
	after := repo.get(before.ID)
	assert.Equal(t, before.SubmissionCount, after.SubmissionCount)
	assert.Equal(t, before.LastSubmittedAt, after.LastSubmittedAt)
	assert.Equal(t, before.Title, after.Title)
}

func TestSubmitBumpsAfterCooldown(t *testing.T) {
	repo := newFakeRepository()
	moderation := settings.DefaultModeration()
	moderation.CooldownValue = 6
	moderation.CooldownUnit = settings.UnitHours
	service := newTestService(repo, moderation)

	before := seededEntry(repo, time.Now().UTC().Add(-7*time.Hour))

	input := validInput()
	input.Title = "Crypto Signals Refreshed"

	bumped, err := service.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, before.ID, bumped.ID)
	assert.Equal(t, before.SubmissionCount+1, bumped.SubmissionCount)
	assert.True(t, bumped.LastSubmittedAt.After(before.LastSubmittedAt))
	assert.Equal(t, "Crypto Signals Refreshed", bumped.Title)

	// Creation time and engagement survive the refresh.
	assert.Equal(t, before.CreatedAt, bumped.CreatedAt)
	assert.Equal(t, before.Clicks, bumped.Clicks)
	assert.Equal(t, before.TotalRating, bumped.TotalRating)
	assert.Equal(t, before.RatingCount, bumped.RatingCount)
}

func TestSubmitBumpsWhenCooldownDisabled(t *testing.T) {
	repo := newFakeRepository()
	moderation := settings.DefaultModeration()
	moderation.CooldownEnabled = false
	service := newTestService(repo, moderation)

	before := seededEntry(repo, time.Now().UTC().Add(-time.Minute))

	bumped, err := service.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, before.SubmissionCount+1, bumped.SubmissionCount)
}

func TestSubmitNormalizesLinkBeforeMatching(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())
	moderation := settings.DefaultModeration()
	moderation.CooldownEnabled = false
	service = newTestService(repo, moderation)

	before := seededEntry(repo, time.Now().UTC().Add(-time.Minute))

	input := validInput()
	input.Link = "  " + before.Link + "/  "

	bumped, err := service.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, before.ID, bumped.ID, "trailing slash and whitespace must not create a duplicate")
}

func TestAdminEditNeverTouchesCounters(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())

	// Submitted one minute ago: well inside the default cooldown.
	before := seededEntry(repo, time.Now().UTC().Add(-time.Minute))

	input := validInput()
	input.GroupID = before.ID
	input.Title = "Moderated Title Fix"

	updated, err := service.Submit(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Moderated Title Fix", updated.Title)
	assert.Equal(t, before.SubmissionCount, updated.SubmissionCount)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, before.LastSubmittedAt, updated.LastSubmittedAt)
	assert.Equal(t, before.Clicks, updated.Clicks)
	assert.Equal(t, before.TotalRating, updated.TotalRating)
	assert.Equal(t, before.RatingCount, updated.RatingCount)
}

func TestSubmitValidatesPrefixPerType(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())

	testCases := []struct {
		name string
		link string
		kind string
	}{
		{name: "group link with channel prefix", link: constants.ChannelInvitePrefix + "xyz", kind: string(TypeGroup)},
		{name: "channel link with group prefix", link: constants.GroupInvitePrefix + "xyz", kind: string(TypeChannel)},
		{name: "not a url", link: "chat.whatsapp.com/abc", kind: string(TypeGroup)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validInput()
			input.Link = testCase.link
			input.Type = testCase.kind

			_, err := service.Submit(context.Background(), input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

func TestSubmitRejectsUnknownTaxonomy(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(
		repo,
		&fakeSettings{moderation: settings.DefaultModeration()},
		&fakeTaxonomy{known: map[string]bool{"category:finance": true}},
		nopCache{},
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
	)

	input := validInput()
	input.Country = "atlantis"

	_, err := service.Submit(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

// # Rating Tests

func TestSubmitRatingAggregates(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())

	// totalRating=12, ratingCount=4: average 3.0 before the new rating.
	entry := seededEntry(repo, time.Now().UTC())

	result, err := service.SubmitRating(context.Background(), entry.ID, 5, false)
	require.NoError(t, err)

	assert.Equal(t, 17, result.TotalRating)
	assert.Equal(t, 5, result.RatingCount)
	assert.InDelta(t, 3.4, result.AverageRating, 0.0001)
}

func TestSubmitRatingRejectsRepeatRater(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())
	before := seededEntry(repo, time.Now().UTC())

	_, err := service.SubmitRating(context.Background(), before.ID, 4, true)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusUnprocessableEntity, appError.HTTPStatus)

	after := repo.get(before.ID)
	assert.Equal(t, before.TotalRating, after.TotalRating)
	assert.Equal(t, before.RatingCount, after.RatingCount)
}

func TestSubmitRatingValidatesRange(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())
	entry := seededEntry(repo, time.Now().UTC())

	for _, rating := range []int{0, 6, -1} {
		_, err := service.SubmitRating(context.Background(), entry.ID, rating, false)
		require.Error(t, err, "rating %d must be rejected", rating)
	}
}

// Two simultaneous ratings must both land: 4 + 5 from zero ends at
// totalRating=9, ratingCount=2 regardless of interleaving.
func TestConcurrentRatingsLoseNoUpdates(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())

	entry := seededEntry(repo, time.Now().UTC())
	fresh := repo.get(entry.ID)
	fresh.TotalRating = 0
	fresh.RatingCount = 0
	repo.put(fresh)

	var wg sync.WaitGroup
	for _, rating := range []int{4, 5} {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := service.SubmitRating(context.Background(), entry.ID, rating, false)
			assert.NoError(t, err)
		}(rating)
	}
	wg.Wait()

	final := repo.get(entry.ID)
	assert.Equal(t, 9, final.TotalRating)
	assert.Equal(t, 2, final.RatingCount)
}

// # Engagement Tests

func TestRegisterClick(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, settings.DefaultModeration())
	entry := seededEntry(repo, time.Now().UTC())

	link, err := service.RegisterClick(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Link, link)

	after := repo.get(entry.ID)
	assert.Equal(t, entry.Clicks+1, after.Clicks)
}
