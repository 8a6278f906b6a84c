package create_booking

import (
	"fmt"
	"strings"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/types"
)

// validateRequest checks the required booking form fields.
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.Amount != nil && *req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	return nil
}

// resolvePaymentMethod parses the requested method, defaulting to cash.
func resolvePaymentMethod(raw string) (domain.PaymentMethod, error) {
	if raw == "" {
		return domain.PaymentMethodCash, nil
	}

	method, err := domain.ParsePaymentMethod(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return method, nil
}

// isOfferedTime reports whether t is one of the offered slot labels.
func isOfferedTime(offered []types.TimeString, t types.TimeString) bool {
	for _, label := range offered {
		if label == t {
			return true
		}
	}
	return false
}

// hasSlotConflict reports whether an active booking already occupies the
// time label. Bookings here are pre-filtered to the requested date.
func hasSlotConflict(bookings []*domain.Booking, t types.TimeString) bool {
	for _, b := range bookings {
		if b.IsActive() && b.Time == t {
			return true
		}
	}
	return false
}
