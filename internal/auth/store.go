// Copyright (c) 2026 Groupdex. All rights reserved.

package auth

import "context"

// # Account Data Access

// Repository defines the data access contract for back-office accounts.
type Repository interface {

	/*
		FindByLogin fetches an account by username or email.

		Returns:
		  - *User: Matching account
		  - error: dberr.ErrNotFound when no account matches
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		FindByID fetches an account by its id.
	*/
	FindByID(context context.Context, id string) (*User, error)
}
