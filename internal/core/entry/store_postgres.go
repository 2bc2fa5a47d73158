// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// entryColumns is the shared SELECT column list for full entity hydration.
const entryColumns = `
	id, link, type, slug, title, description, imageurl, imagehint,
	category, country, tags, clicks, submissioncount, totalrating,
	ratingcount, featured, createdat, lastsubmittedat
`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed entry store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Entry Retrieval

/*
List returns a filtered and paginated list of entries.

Description: Uses ILIKE for title search and COUNT(*) OVER() for total metadata.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Entry: Slice of matching entries
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Entry, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + entryColumns + `,
			COUNT(*) OVER() as total
		FROM entries
		WHERE TRUE
	`)

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argID))
		args = append(args, filter.Category)
		argID++
	}

	if filter.Country != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND country = $%d", argID))
		args = append(args, filter.Country)
		argID++
	}

	if filter.Type != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND type = $%d", argID))
		args = append(args, filter.Type)
		argID++
	}

	if len(filter.Tags) > 0 {
		// Array containment: the entry must carry every requested tag.
		queryBuilder.WriteString(fmt.Sprintf(" AND tags @> $%d", argID))
		args = append(args, filter.Tags)
		argID++
	}

	if filter.Featured != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND featured = $%d", argID))
		args = append(args, *filter.Featured)
		argID++
	}

	queryBuilder.WriteString(orderClause(filter.Sort))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_entries")
	}
	defer rows.Close()

	var entries []*Entry
	var total int
	for rows.Next() {
		entry := &Entry{}
		err := rows.Scan(
			&entry.ID, &entry.Link, &entry.Type, &entry.Slug, &entry.Title, &entry.Description,
			&entry.ImageURL, &entry.ImageHint, &entry.Category, &entry.Country, &entry.Tags,
			&entry.Clicks, &entry.SubmissionCount, &entry.TotalRating, &entry.RatingCount,
			&entry.Featured, &entry.CreatedAt, &entry.LastSubmittedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_entry")
		}
		entry.ComputeAverage()
		entries = append(entries, entry)
	}

	return entries, total, nil
}

// orderClause maps a sort keyword to a whitelisted ORDER BY clause.
// Unknown values fall back to recency so user input never reaches SQL.
func orderClause(sort string) string {
	switch sort {
	case SortPopular:
		return " ORDER BY clicks DESC, lastsubmittedat DESC"
	case SortTopRated:
		return " ORDER BY (CASE WHEN ratingcount = 0 THEN 0 ELSE totalrating::float / ratingcount END) DESC, ratingcount DESC"
	default:
		return " ORDER BY lastsubmittedat DESC"
	}
}

// FindByID retrieves a single entry by its primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Entry, error) {
	return repository.findBy(context, "id", id)
}

// FindBySlug retrieves a single entry by its URL slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Entry, error) {
	return repository.findBy(context, "slug", slug)
}

// FindByLink retrieves a single entry by its normalized invite link.
func (repository *PostgresRepository) FindByLink(context context.Context, link string) (*Entry, error) {
	return repository.findBy(context, "link", link)
}

// findBy hydrates one entry matched on a fixed column.
func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE ` + column + ` = $1`

	entry := &Entry{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&entry.ID, &entry.Link, &entry.Type, &entry.Slug, &entry.Title, &entry.Description,
		&entry.ImageURL, &entry.ImageHint, &entry.Category, &entry.Country, &entry.Tags,
		&entry.Clicks, &entry.SubmissionCount, &entry.TotalRating, &entry.RatingCount,
		&entry.Featured, &entry.CreatedAt, &entry.LastSubmittedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_entry_by_"+column)
	}

	entry.ComputeAverage()
	return entry, nil
}

// # Entry Mutation

/*
Create inserts a brand-new entry row.

The UNIQUE constraint on the link column turns a concurrent duplicate
first-time submission into a CONFLICT error instead of a second row.
*/
func (repository *PostgresRepository) Create(context context.Context, entry *Entry) error {
	const query = `
		INSERT INTO entries (
			id, link, type, slug, title, description, imageurl, imagehint,
			category, country, tags, clicks, submissioncount, totalrating,
			ratingcount, featured, createdat, lastsubmittedat
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18
		)
	`

	_, err := repository.db.Exec(context, query,
		entry.ID, entry.Link, entry.Type, entry.Slug, entry.Title, entry.Description,
		entry.ImageURL, entry.ImageHint, entry.Category, entry.Country, entry.Tags,
		entry.Clicks, entry.SubmissionCount, entry.TotalRating, entry.RatingCount,
		entry.Featured, entry.CreatedAt, entry.LastSubmittedAt,
	)
	return dberr.Wrap(err, "create_entry")
}

// UpdateContent replaces the mutable content fields, leaving counters and
// timestamps untouched.
func (repository *PostgresRepository) UpdateContent(context context.Context, id string, content Content) (*Entry, error) {
	query := `
		UPDATE entries SET
			title = $2, description = $3, imageurl = $4, imagehint = $5,
			category = $6, country = $7, tags = $8
		WHERE id = $1
		RETURNING ` + entryColumns

	return repository.scanMutation(context, query, "update_entry_content",
		id, content.Title, content.Description, content.ImageURL, content.ImageHint,
		content.Category, content.Country, content.Tags,
	)
}

// Bump refreshes the content fields, increments the submission counter and
// advances the recency timestamp in a single statement.
func (repository *PostgresRepository) Bump(context context.Context, id string, content Content) (*Entry, error) {
	query := `
		UPDATE entries SET
			title = $2, description = $3, imageurl = $4, imagehint = $5,
			category = $6, country = $7, tags = $8,
			submissioncount = submissioncount + 1,
			lastsubmittedat = NOW()
		WHERE id = $1
		RETURNING ` + entryColumns

	return repository.scanMutation(context, query, "bump_entry",
		id, content.Title, content.Description, content.ImageURL, content.ImageHint,
		content.Category, content.Country, content.Tags,
	)
}

// IncrementClicks adds one click and returns the invite link for the redirect.
func (repository *PostgresRepository) IncrementClicks(context context.Context, id string) (string, error) {
	const query = `
		UPDATE entries SET clicks = clicks + 1
		WHERE id = $1
		RETURNING link
	`

	var link string
	if err := repository.db.QueryRow(context, query, id).Scan(&link); err != nil {
		return "", dberr.Wrap(err, "increment_entry_clicks")
	}
	return link, nil
}

/*
AddRating folds one rating into the aggregate counters.

Description: SELECT ... FOR UPDATE serializes concurrent raters on the row,
so the read-modify-write below can never lose an update.

Parameters:
  - context: context.Context
  - id: string
  - rating: int (already validated to [1,5])

Returns:
  - int: New total rating
  - int: New rating count
  - error: dberr.ErrNotFound if the entry is missing, wrapped storage errors otherwise
*/
func (repository *PostgresRepository) AddRating(context context.Context, id string, rating int) (int, int, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return 0, 0, dberr.Wrap(err, "begin_rating_tx")
	}

	// Defer Transaction State Reversal
	// Ensures that uncommitted network handles are safely reclaimed if application logic panics.
	defer transaction.Rollback(context)

	var totalRating, ratingCount int
	err = transaction.QueryRow(context,
		`SELECT totalrating, ratingcount FROM entries WHERE id = $1 FOR UPDATE`, id,
	).Scan(&totalRating, &ratingCount)
	if err != nil {
		return 0, 0, dberr.Wrap(err, "lock_entry_for_rating")
	}

	newTotal := totalRating + rating
	newCount := ratingCount + 1

	_, err = transaction.Exec(context,
		`UPDATE entries SET totalrating = $2, ratingcount = $3 WHERE id = $1`,
		id, newTotal, newCount,
	)
	if err != nil {
		return 0, 0, dberr.Wrap(err, "write_entry_rating")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, 0, dberr.Wrap(err, "commit_rating_tx")
	}

	return newTotal, newCount, nil
}

// SetFeatured toggles the homepage-featured flag.
func (repository *PostgresRepository) SetFeatured(context context.Context, id string, featured bool) (*Entry, error) {
	query := `
		UPDATE entries SET featured = $2
		WHERE id = $1
		RETURNING ` + entryColumns

	return repository.scanMutation(context, query, "set_entry_featured", id, featured)
}

// Delete removes the entry permanently.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	response, err := repository.db.Exec(context, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_entry")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("Entry")
	}
	return nil
}

// scanMutation runs a RETURNING mutation and hydrates the updated entry.
func (repository *PostgresRepository) scanMutation(context context.Context, query, action string, args ...any) (*Entry, error) {
	entry := &Entry{}
	err := repository.db.QueryRow(context, query, args...).Scan(
		&entry.ID, &entry.Link, &entry.Type, &entry.Slug, &entry.Title, &entry.Description,
		&entry.ImageURL, &entry.ImageHint, &entry.Category, &entry.Country, &entry.Tags,
		&entry.Clicks, &entry.SubmissionCount, &entry.TotalRating, &entry.RatingCount,
		&entry.Featured, &entry.CreatedAt, &entry.LastSubmittedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	entry.ComputeAverage()
	return entry, nil
}
