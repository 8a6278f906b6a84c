package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput is returned for malformed staff data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("staff: internal error")
)
