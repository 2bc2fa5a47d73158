// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package entry implements the directory's central domain: invite-link entries
and the submission, rating and engagement flows around them.

# Submission State Machine

A single submission endpoint serves three cases, decided in order:

 1. An id is present → administrator edit-in-place. Content fields are
    replaced, counters and timestamps are untouched.
 2. The link already exists → resubmission. Subject to the moderation
    cooldown; an accepted resubmission refreshes the content ("bump"),
    increments the submission counter and advances the recency timestamp.
 3. Otherwise → a brand-new entry with fresh counters.

# Concurrency

Rating aggregation is the one mutation that must be atomic: concurrent
raters update the same counters, so the store serializes them with a
row-locking transaction. Duplicate first-time submissions of the same link
are prevented by a unique constraint on the link column rather than by the
lookup, closing the check-then-act window.
*/
package entry

import "time"

// # Entry Types

// Type discriminates between the two kinds of invite links.
type Type string

const (
	TypeGroup   Type = "group"
	TypeChannel Type = "channel"
)

// # Domain Model

// Entry is a single directory listing for a community invite link.
type Entry struct {
	ID   string `json:"id"`
	Link string `json:"link"`
	Type Type   `json:"type"`
	Slug string `json:"slug"`

	// Mutable content, refreshed on every accepted resubmission.
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    *string  `json:"image_url,omitempty"`
	ImageHint   *string  `json:"image_hint,omitempty"`
	Category    string   `json:"category"`
	Country     string   `json:"country"`
	Tags        []string `json:"tags"`

	// Engagement counters. Clicks and submission count only ever grow;
	// rating totals change only inside the rating transaction.
	Clicks          int `json:"clicks"`
	SubmissionCount int `json:"submission_count"`
	TotalRating     int `json:"total_rating"`
	RatingCount     int `json:"rating_count"`

	// AverageRating is derived, never stored. Nil while unrated.
	AverageRating *float64 `json:"average_rating,omitempty"`

	Featured bool `json:"featured"`

	CreatedAt       time.Time `json:"created_at"`
	LastSubmittedAt time.Time `json:"last_submitted_at"`
}

// ComputeAverage populates AverageRating from the stored counters.
func (entry *Entry) ComputeAverage() {
	if entry.RatingCount <= 0 {
		entry.AverageRating = nil
		return
	}
	average := float64(entry.TotalRating) / float64(entry.RatingCount)
	entry.AverageRating = &average
}

// Content carries the mutable fields written by edits and bumps.
type Content struct {
	Title       string
	Description string
	ImageURL    *string
	ImageHint   *string
	Category    string
	Country     string
	Tags        []string
}

// # Listing

// Sort orders supported by the public listing.
const (
	SortNewest   = "newest"
	SortPopular  = "popular"
	SortTopRated = "top_rated"
)

// Filter narrows the public and admin listings.
type Filter struct {
	Query    string
	Category string
	Country  string
	Type     string
	Tags     []string
	Featured *bool
	Sort     string
}

// # Field Identifiers

const (
	FieldLink        = "link"
	FieldType        = "type"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCountry     = "country"
	FieldTags        = "tags"
	FieldRating      = "rating"
	FieldGroupID     = "group_id"
)
