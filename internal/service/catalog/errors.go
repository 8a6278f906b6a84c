package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned for malformed service data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("catalog: internal error")
)
