package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the status change is not allowed
	// from the booking's current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("service: internal error")
)
