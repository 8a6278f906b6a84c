package availability

import "errors"

var (
	// ErrInvalidInput is returned when required parameters are missing
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("availability: internal error")
)
