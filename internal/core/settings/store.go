// Copyright (c) 2026 Groupdex. All rights reserved.

package settings

import "context"

// # Settings Data Access

// Repository defines the data access contract for the settings singletons.
type Repository interface {

	/*
		GetModeration loads the moderation singleton.

		Returns:
		  - Moderation: Stored record
		  - error: dberr.ErrNotFound when the row has never been written
	*/
	GetModeration(context context.Context) (Moderation, error)

	/*
		SaveModeration upserts the moderation singleton.
	*/
	SaveModeration(context context.Context, moderation Moderation) error

	/*
		GetLayout loads the layout singleton.

		Returns:
		  - Layout: Stored record
		  - error: dberr.ErrNotFound when the row has never been written
	*/
	GetLayout(context context.Context) (Layout, error)

	/*
		SaveLayout upserts the layout singleton.
	*/
	SaveLayout(context context.Context, layout Layout) error
}
