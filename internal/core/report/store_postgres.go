// Copyright (c) 2026 Groupdex. All rights reserved.

package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed report store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a new report row.
func (repository *PostgresRepository) Create(context context.Context, report *Report) error {
	const query = `
		INSERT INTO reports (id, groupid, grouptitle, reason, status, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := repository.db.Exec(context, query,
		report.ID, report.GroupID, report.GroupTitle, report.Reason, report.Status, report.CreatedAt,
	)
	return dberr.Wrap(err, "create_report")
}

// List returns a page of reports, newest first, with the total count.
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Report, int, error) {
	const query = `
		SELECT id, groupid, grouptitle, reason, status, createdat,
			COUNT(*) OVER() as total
		FROM reports
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reports")
	}
	defer rows.Close()

	var reports []*Report
	var total int
	for rows.Next() {
		report := &Report{}
		err := rows.Scan(
			&report.ID, &report.GroupID, &report.GroupTitle,
			&report.Reason, &report.Status, &report.CreatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_report")
		}
		reports = append(reports, report)
	}

	return reports, total, nil
}

// Delete removes a report row.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	response, err := repository.db.Exec(context, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_report")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("Report")
	}
	return nil
}
