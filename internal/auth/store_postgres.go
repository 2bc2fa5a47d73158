// Copyright (c) 2026 Groupdex. All rights reserved.

package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed account store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, passwordhash, role, createdat, updatedat`

// FindByLogin fetches an account by username or email (case-insensitive).
func (repository *PostgresRepository) FindByLogin(context context.Context, login string) (*User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
	`
	return repository.scanOne(context, query, login, "find_user_by_login")
}

// FindByID fetches an account by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return repository.scanOne(context, query, id, "find_user_by_id")
}

// scanOne hydrates a single account row.
func (repository *PostgresRepository) scanOne(context context.Context, query, argument, action string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(context, query, argument).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return user, nil
}
