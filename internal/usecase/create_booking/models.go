package create_booking

import (
	"time"

	"github.com/sparkleclean/booking-service/pkg/types"
)

// Request is the public booking form payload.
type Request struct {
	ServiceID     int64            // requested cleaning service
	Date          time.Time        // booking date (no time component)
	Time          types.TimeString // slot label, e.g. "10:00"
	Name          string
	Email         string
	Phone         string
	Address       string
	Notes         *string
	PaymentMethod string   // credit_card | paypal | cash; defaults to cash
	Amount        *float64 // defaults to service price plus tax
}

// Response is the created booking.
type Response struct {
	ID            int64
	CleaningCode  string
	ServiceID     int64
	Date          time.Time
	Time          types.TimeString
	Name          string
	Email         string
	Phone         string
	Address       string
	Notes         *string
	Status        string
	PaymentMethod string
	PaymentAmount float64
	PaymentStatus string

	CreatedAt time.Time
	UpdatedAt time.Time
}
