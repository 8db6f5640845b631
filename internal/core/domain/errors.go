package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested key is absent from an index.
	// Callers are expected to check membership before lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuery indicates an empty or unusable search query.
	// There are no wildcard "return everything" semantics.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidInput indicates malformed or invalid caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown search type, export format,
	// or document kind. Never silently falls back.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtraction indicates an unreadable or corrupt document.
	// Always wrapped with the originating file name. The ingestion run
	// aborts with no catalog mutation.
	ErrExtraction = errors.New("extraction failed")
)
