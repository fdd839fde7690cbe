package models

import "github.com/cockroachdb/errors"

// Sentinel errors for every client-input failure the service can
// surface. Use errors.Is() to classify, errors.Wrap()/Wrapf() to add
// context while preserving the kind. None of these is fatal and none
// is retriable: the operations are deterministic, so retrying with the
// same input reproduces the same error.
var (
	// ErrMissingField indicates the request body lacks the value field.
	ErrMissingField = errors.New("missing required field")

	// ErrWrongType indicates the value field is not a string.
	ErrWrongType = errors.New("field has wrong type")

	// ErrEmptyValue indicates the value is empty after trimming.
	ErrEmptyValue = errors.New("value is empty")

	// ErrDuplicate indicates a record already exists for the value.
	ErrDuplicate = errors.New("value already analyzed")

	// ErrNotFound indicates no record exists under the requested key.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidFilterValue indicates a filter query parameter failed
	// to parse as its expected type.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrConflictingFilters indicates a filter set that can never
	// match, e.g. min_length greater than max_length.
	ErrConflictingFilters = errors.New("conflicting filters")

	// ErrUnparsableQuery indicates a natural-language query matched no
	// known pattern.
	ErrUnparsableQuery = errors.New("could not parse query")

	// ErrMissingQuery indicates a blank or absent natural-language query.
	ErrMissingQuery = errors.New("missing query")
)
