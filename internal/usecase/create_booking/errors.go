package create_booking

import "errors"

var (
	// ErrBookingDisabled is returned when online booking is switched off
	ErrBookingDisabled = errors.New("create_booking: online booking is disabled")

	// ErrDateBlocked is returned for a date the company blocked
	ErrDateBlocked = errors.New("create_booking: date is not available for booking")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive is returned when the service is not offered anymore
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrPaymentMethodDisabled is returned when the chosen payment method
	// is not accepted
	ErrPaymentMethodDisabled = errors.New("create_booking: payment method is not accepted")

	// ErrSlotNotOffered is returned for a time outside the offered slots
	ErrSlotNotOffered = errors.New("create_booking: time is not an offered slot")

	// ErrSlotNotAvailable is returned when an active booking already
	// occupies the date and time
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("create_booking: internal error")
)
