package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending skips to done", from: StatusPending, to: StatusDone, want: false},
		{name: "confirmed to on_the_way", from: StatusConfirmed, to: StatusOnTheWay, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "on_the_way to done", from: StatusOnTheWay, to: StatusDone, want: true},
		{name: "on_the_way to cancelled", from: StatusOnTheWay, to: StatusCancelled, want: true},
		{name: "done is terminal", from: StatusDone, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("on_the_way")
	require.NoError(t, err)
	assert.Equal(t, StatusOnTheWay, status)

	_, err = ParseBookingStatus("completed")
	assert.Error(t, err)
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusOnTheWay} {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should be active", status)
	}
	for _, status := range []BookingStatus{StatusDone, StatusCancelled} {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s should be inactive", status)
	}
}

func TestDefaultPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusPending, DefaultPaymentStatus(PaymentMethodCash))
	assert.Equal(t, PaymentStatusPaid, DefaultPaymentStatus(PaymentMethodCreditCard))
	assert.Equal(t, PaymentStatusPaid, DefaultPaymentStatus(PaymentMethodPayPal))
}

func TestNewCleaningCode(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

	code := NewCleaningCode(now)
	assert.Regexp(t, regexp.MustCompile(`^CLN-20251015093000-[A-Z2-9]{4}$`), code)

	// The random suffix keeps codes distinguishable within one second.
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[NewCleaningCode(now)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPaymentPatch_IsEmpty(t *testing.T) {
	assert.True(t, PaymentPatch{}.IsEmpty())

	amount := 120.0
	assert.False(t, PaymentPatch{Amount: &amount}.IsEmpty())
}
