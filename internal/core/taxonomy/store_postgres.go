// Copyright (c) 2026 Groupdex. All rights reserved.

package taxonomy

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// kindTables maps each vocabulary onto its table. Only values from this map
// ever reach SQL, so the table name is never user-controlled.
var kindTables = map[Kind]string{
	KindCategory: "categories",
	KindCountry:  "countries",
}

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed taxonomy store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every term of the vocabulary, ordered by label.
func (repository *PostgresRepository) List(context context.Context, kind Kind) ([]Term, error) {
	query := `SELECT value, label FROM ` + kindTables[kind] + ` ORDER BY label ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+string(kind))
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var term Term
		if err := rows.Scan(&term.Value, &term.Label); err != nil {
			return nil, dberr.Wrap(err, "scan_"+string(kind))
		}
		terms = append(terms, term)
	}

	return terms, nil
}

// Exists reports whether the value is part of the vocabulary.
func (repository *PostgresRepository) Exists(context context.Context, kind Kind, value string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM ` + kindTables[kind] + ` WHERE value = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, value).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "exists_"+string(kind))
	}
	return exists, nil
}

// Create inserts a new term. Unique violations surface as CONFLICT.
func (repository *PostgresRepository) Create(context context.Context, kind Kind, term Term) error {
	query := `INSERT INTO ` + kindTables[kind] + ` (value, label) VALUES ($1, $2)`

	_, err := repository.db.Exec(context, query, term.Value, term.Label)
	return dberr.Wrap(err, "create_"+string(kind))
}

// Delete removes a term by value.
func (repository *PostgresRepository) Delete(context context.Context, kind Kind, value string) error {
	query := `DELETE FROM ` + kindTables[kind] + ` WHERE value = $1`

	response, err := repository.db.Exec(context, query, value)
	if err != nil {
		return dberr.Wrap(err, "delete_"+string(kind))
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("Term")
	}
	return nil
}
