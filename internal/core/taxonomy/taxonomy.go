// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package taxonomy manages the category and country vocabularies that
classify directory entries.

Terms are value-addressed: the stable machine value doubles as the
identifier, with a human label alongside. Deleting a term does not cascade
to the entries referencing it; existing entries keep their stored value and
only new submissions are validated against the live vocabulary.
*/
package taxonomy

// # Kinds

// Kind selects one of the two vocabularies.
type Kind string

const (
	KindCategory Kind = "category"
	KindCountry  Kind = "country"
)

// Valid reports whether the kind names a known vocabulary.
func (kind Kind) Valid() bool {
	return kind == KindCategory || kind == KindCountry
}

// # Domain Model

// Term is a single vocabulary entry.
type Term struct {
	// Value is the stable machine identifier stored on entries.
	Value string `json:"value"`
	// Label is the human-readable display name.
	Label string `json:"label"`
}

// # Field Identifiers

const (
	FieldKind  = "kind"
	FieldValue = "value"
	FieldLabel = "label"
)
