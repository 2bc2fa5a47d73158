// Copyright (c) 2026 Groupdex. All rights reserved.

package settings

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
//
// Both singletons live in a single two-column table (id, payload jsonb),
// mirroring the document-style shape of the records.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed settings store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetModeration loads the moderation singleton row.
func (repository *PostgresRepository) GetModeration(context context.Context) (Moderation, error) {
	var moderation Moderation
	err := repository.load(context, IDModeration, &moderation)
	return moderation, err
}

// SaveModeration upserts the moderation singleton row.
func (repository *PostgresRepository) SaveModeration(context context.Context, moderation Moderation) error {
	return repository.save(context, IDModeration, moderation)
}

// GetLayout loads the layout singleton row.
func (repository *PostgresRepository) GetLayout(context context.Context) (Layout, error) {
	var layout Layout
	err := repository.load(context, IDLayout, &layout)
	return layout, err
}

// SaveLayout upserts the layout singleton row.
func (repository *PostgresRepository) SaveLayout(context context.Context, layout Layout) error {
	return repository.save(context, IDLayout, layout)
}

// load reads and unmarshals a singleton payload.
func (repository *PostgresRepository) load(context context.Context, id string, target any) error {
	const query = `SELECT payload FROM settings WHERE id = $1`

	var payload []byte
	if err := repository.db.QueryRow(context, query, id).Scan(&payload); err != nil {
		return dberr.Wrap(err, "get_settings_"+id)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return dberr.Wrap(err, "decode_settings_"+id)
	}

	return nil
}

// save marshals and upserts a singleton payload.
func (repository *PostgresRepository) save(context context.Context, id string, value any) error {
	const query = `
		INSERT INTO settings (id, payload, updatedat)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updatedat = NOW()
	`

	payload, err := json.Marshal(value)
	if err != nil {
		return dberr.Wrap(err, "encode_settings_"+id)
	}

	_, err = repository.db.Exec(context, query, id, payload)
	return dberr.Wrap(err, "save_settings_"+id)
}
