package assign_staff

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("assign_staff: booking not found")

	// ErrStaffNotFound is returned when the staff member does not exist
	ErrStaffNotFound = errors.New("assign_staff: staff member not found")

	// ErrStaffInactive is returned when the staff member is inactive
	ErrStaffInactive = errors.New("assign_staff: staff member is inactive")

	// ErrStaffConflict is returned when the staff member already has an
	// active booking at the same date and time
	ErrStaffConflict = errors.New("assign_staff: staff member is not available")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("assign_staff: invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("assign_staff: internal error")
)
