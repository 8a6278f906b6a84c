package analytics

import "errors"

var (
	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("analytics: internal error")
)
