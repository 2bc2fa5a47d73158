// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"context"
	"log/slog"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/validate"
)

// RatingResult is the aggregate state after a rating is accepted.
type RatingResult struct {
	EntryID       string  `json:"entry_id"`
	TotalRating   int     `json:"total_rating"`
	RatingCount   int     `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

/*
SubmitRating folds one visitor rating into an entry's aggregate counters.

The caller supplies alreadyRated from the visitor's rated-set cookie; the
handler appends the entry id to that set only after this returns success.

Parameters:
  - context: context.Context
  - entryID: string
  - rating: int (coerced integer, validated to [1,5])
  - alreadyRated: bool

Returns:
  - RatingResult: New counters and average
  - error: VALIDATION_ERROR for an out-of-range rating, UNPROCESSABLE when
    the visitor has already rated this entry, NOT_FOUND for unknown ids
*/
func (service *Service) SubmitRating(context context.Context, entryID string, rating int, alreadyRated bool) (RatingResult, error) {
	validator := validate.New().
		UUID(FieldGroupID, entryID).
		Range(FieldRating, rating, 1, 5)
	if err := validator.Err(); err != nil {
		return RatingResult{}, err
	}

	if alreadyRated {
		return RatingResult{}, apperr.Unprocessable("You have already rated this entry")
	}

	newTotal, newCount, err := service.repo.AddRating(context, entryID, rating)
	if err != nil {
		return RatingResult{}, err
	}

	service.cache.InvalidateEntry(context, entryID)
	service.logger.Info("rating accepted",
		slog.String("entry_id", entryID),
		slog.Int("rating", rating),
		slog.Int("rating_count", newCount),
	)

	return RatingResult{
		EntryID:       entryID,
		TotalRating:   newTotal,
		RatingCount:   newCount,
		AverageRating: float64(newTotal) / float64(newCount),
	}, nil
}
