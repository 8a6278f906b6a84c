package notifications

import "errors"

var (
	// ErrInvalidInput is returned for malformed notification data
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("notifications: internal error")
)
