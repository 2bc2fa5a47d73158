// Copyright (c) 2026 Groupdex. All rights reserved.

package taxonomy

import "context"

// # Taxonomy Data Access

// Repository defines the data access contract for the vocabularies.
type Repository interface {

	/*
		List returns every term of the vocabulary, ordered by label.
	*/
	List(context context.Context, kind Kind) ([]Term, error)

	/*
		Exists reports whether the value is part of the vocabulary.
	*/
	Exists(context context.Context, kind Kind, value string) (bool, error)

	/*
		Create inserts a new term.

		Returns:
		  - error: A CONFLICT AppError when the value is already taken
	*/
	Create(context context.Context, kind Kind, term Term) error

	/*
		Delete removes a term by value.

		Returns:
		  - error: dberr.ErrNotFound when the value is unknown
	*/
	Delete(context context.Context, kind Kind, value string) error
}
