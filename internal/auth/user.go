// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package auth manages back-office accounts and admin session tokens.

The directory's public surface is anonymous; only the moderation dashboard
requires an account. Accounts are provisioned out of band (seed migration
or direct SQL), so there is no self-registration flow.
*/
package auth

import "time"

// User is a back-office account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// PasswordHash is bcrypt output, never serialized.
	PasswordHash string `json:"-"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)
