// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import "context"

// # Entry Data Access

// Repository defines the data access contract for directory entries.
type Repository interface {

	/*
		List returns a page of entries matching the filter.

		Returns:
		  - []*Entry: Page of entries, newest-first unless the filter says otherwise
		  - int: Total number of matching rows across all pages
		  - error: Wrapped storage error
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error)

	/*
		FindByID fetches a single entry by its id.

		Returns:
		  - *Entry: Found entry
		  - error: dberr.ErrNotFound when no row matches
	*/
	FindByID(context context.Context, id string) (*Entry, error)

	/*
		FindBySlug fetches a single entry by its URL slug.
	*/
	FindBySlug(context context.Context, slug string) (*Entry, error)

	/*
		FindByLink fetches a single entry by its normalized invite link.

		Returns:
		  - error: dberr.ErrNotFound when the link has never been submitted
	*/
	FindByLink(context context.Context, link string) (*Entry, error)

	/*
		Create inserts a brand-new entry.

		Returns:
		  - error: A CONFLICT AppError when the link already exists (unique
		    constraint), closing the duplicate-submission race
	*/
	Create(context context.Context, entry *Entry) error

	/*
		UpdateContent replaces the mutable content fields only. Counters and
		timestamps are untouched.
	*/
	UpdateContent(context context.Context, id string, content Content) (*Entry, error)

	/*
		Bump replaces the content fields, increments the submission counter
		and advances the recency timestamp, all in one statement.
	*/
	Bump(context context.Context, id string, content Content) (*Entry, error)

	/*
		IncrementClicks adds one to the click counter.

		Returns:
		  - string: The entry's invite link, for the click-through redirect
	*/
	IncrementClicks(context context.Context, id string) (string, error)

	/*
		AddRating folds one rating into the entry's aggregate counters inside
		a row-locking transaction, so concurrent raters cannot lose updates.

		Returns:
		  - int: New total rating
		  - int: New rating count
	*/
	AddRating(context context.Context, id string, rating int) (int, int, error)

	/*
		SetFeatured toggles the homepage-featured flag.
	*/
	SetFeatured(context context.Context, id string, featured bool) (*Entry, error)

	/*
		Delete removes the entry permanently.
	*/
	Delete(context context.Context, id string) error
}
