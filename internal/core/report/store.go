// Copyright (c) 2026 Groupdex. All rights reserved.

package report

import "context"

// # Report Data Access

// Repository defines the data access contract for reports.
type Repository interface {

	/*
		Create appends a new report record.
	*/
	Create(context context.Context, report *Report) error

	/*
		List returns a page of reports, newest first.

		Returns:
		  - []*Report: Page of reports
		  - int: Total record count
	*/
	List(context context.Context, limit, offset int) ([]*Report, int, error)

	/*
		Delete removes a report, which is how moderators resolve it.

		Returns:
		  - error: dberr.ErrNotFound when the id is unknown
	*/
	Delete(context context.Context, id string) error
}
