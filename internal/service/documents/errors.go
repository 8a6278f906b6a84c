package documents

import "errors"

var (
	// ErrUnknownDocument is returned for a collection name outside the managed set
	ErrUnknownDocument = errors.New("documents: unknown document collection")

	// ErrInvalidDocument is returned when the payload is not a JSON object
	ErrInvalidDocument = errors.New("documents: document body must be a JSON object")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("documents: internal error")
)
