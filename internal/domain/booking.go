package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sparkleclean/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusOnTheWay  BookingStatus = "on_the_way"
	StatusDone      BookingStatus = "done"
	StatusCancelled BookingStatus = "cancelled"
)

// statusTransitions is the canonical lifecycle:
// pending -> confirmed -> on_the_way -> done, with cancelled reachable
// from any active status. Historical data carried several status
// vocabularies; this table is the single source of truth now.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay:  {StatusDone, StatusCancelled},
	StatusDone:      {},
	StatusCancelled: {},
}

// ParseBookingStatus validates a status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := statusTransitions[status]; !ok {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PaymentMethod is how the customer pays for a booking.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodCash       PaymentMethod = "cash"
)

// ParsePaymentMethod validates a payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodCash:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// PaymentStatus is the settlement state of a booking's payment.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// ParsePaymentStatus validates a payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch ps := PaymentStatus(s); ps {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusPending:
		return ps, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// DefaultPaymentStatus derives the initial payment status from the method.
// There is no real payment gateway: anything other than cash is treated
// as settled immediately, cash is collected on arrival.
func DefaultPaymentStatus(method PaymentMethod) PaymentStatus {
	if method == PaymentMethodCash {
		return PaymentStatusPending
	}
	return PaymentStatusPaid
}

// Payment is the payment record embedded in a booking.
type Payment struct {
	Method PaymentMethod
	Amount float64
	Status PaymentStatus
}

// Booking represents one scheduled cleaning job.
type Booking struct {
	ID           int64
	CleaningCode string
	ServiceID    int64
	Date         time.Time
	Time         types.TimeString

	// Customer details
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   *string

	Status     BookingStatus
	AssignedTo *int64 // staff id; nil means unassigned
	Payment    Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still occupies its slot.
// Cancelled and done bookings never block a slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusDone
}

// IsAssigned reports whether a staff member is assigned.
func (b *Booking) IsAssigned() bool {
	return b.AssignedTo != nil
}

const cleaningCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewCleaningCode builds a human-readable booking reference:
// a CLN prefix, the creation timestamp, and a random suffix so codes
// stay distinguishable even under rapid creation.
func NewCleaningCode(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = cleaningCodeAlphabet[rand.Intn(len(cleaningCodeAlphabet))]
	}
	return fmt.Sprintf("CLN-%s-%s", now.Format("20060102150405"), suffix)
}

// PaymentPatch is a partial update of a booking's payment record.
// Nil fields are left untouched (shallow merge).
type PaymentPatch struct {
	Method *PaymentMethod
	Amount *float64
	Status *PaymentStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p PaymentPatch) IsEmpty() bool {
	return p.Method == nil && p.Amount == nil && p.Status == nil
}

// BookingsFilter narrows booking listings.
type BookingsFilter struct {
	Date            *time.Time     // bookings on a calendar date
	Status          *BookingStatus // exact status match
	AssignedTo      *int64         // bookings assigned to a staff member
	IncludeInactive bool           // include cancelled and done bookings
}
