package locations

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidInput is returned for malformed location data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("locations: internal error")
)
