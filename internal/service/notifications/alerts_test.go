package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/ptr"
)

var today = time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

func alertBooking(day time.Time, status domain.BookingStatus, assignedTo *int64) *domain.Booking {
	return &domain.Booking{
		Date:       day,
		Time:       "10:00",
		Status:     status,
		AssignedTo: assignedTo,
	}
}

func alertByType(t *testing.T, alerts []domain.SystemAlert, alertType string) domain.SystemAlert {
	t.Helper()
	for _, a := range alerts {
		if a.Type == alertType {
			return a
		}
	}
	t.Fatalf("alert %s not found", alertType)
	return domain.SystemAlert{}
}

func TestDeriveAlerts_Empty(t *testing.T) {
	assert.Empty(t, deriveAlerts(nil, today))
}

func TestDeriveAlerts_TodayAgenda(t *testing.T) {
	bookings := []*domain.Booking{
		alertBooking(today.Truncate(24*time.Hour), domain.StatusConfirmed, ptr.Ptr(int64(1))),
		alertBooking(today.Truncate(24*time.Hour), domain.StatusPending, ptr.Ptr(int64(2))),
		alertBooking(today.AddDate(0, 0, 3), domain.StatusPending, ptr.Ptr(int64(1))),
	}

	alerts := deriveAlerts(bookings, today)

	agenda := alertByType(t, alerts, AlertTodayAgenda)
	assert.Equal(t, 2, agenda.Count)
	assert.Equal(t, domain.AlertPriorityHigh, agenda.Priority)
	assert.Equal(t, "2 booking(s) scheduled for today", agenda.Message)
}

func TestDeriveAlerts_UnassignedAndOverdue(t *testing.T) {
	bookings := []*domain.Booking{
		alertBooking(today.AddDate(0, 0, -2), domain.StatusConfirmed, nil), // overdue and unassigned
		alertBooking(today.AddDate(0, 0, 5), domain.StatusPending, nil),    // unassigned only
	}

	alerts := deriveAlerts(bookings, today)

	unassigned := alertByType(t, alerts, AlertUnassigned)
	assert.Equal(t, 2, unassigned.Count)
	assert.Equal(t, domain.AlertPriorityCritical, unassigned.Priority)

	overdue := alertByType(t, alerts, AlertOverdue)
	assert.Equal(t, 1, overdue.Count)
	assert.Equal(t, domain.AlertPriorityCritical, overdue.Priority)
}

func TestDeriveAlerts_InactiveBookingsExcluded(t *testing.T) {
	bookings := []*domain.Booking{
		alertBooking(today.Truncate(24*time.Hour), domain.StatusCancelled, nil),
		alertBooking(today.AddDate(0, 0, -1), domain.StatusDone, ptr.Ptr(int64(1))),
		alertBooking(today.AddDate(0, 0, -1), domain.StatusCancelled, nil),
	}

	// Cancelled and done bookings raise nothing: done past bookings are
	// finished work, not overdue work.
	assert.Empty(t, deriveAlerts(bookings, today))
}

func TestDeriveAlerts_ZeroCountsSuppressed(t *testing.T) {
	bookings := []*domain.Booking{
		alertBooking(today.AddDate(0, 0, 2), domain.StatusConfirmed, ptr.Ptr(int64(1))),
	}

	alerts := deriveAlerts(bookings, today)
	assert.Empty(t, alerts)
}

func TestDeriveAlerts_NonUTCClock(t *testing.T) {
	// Dates come out of storage at UTC midnight regardless of the
	// server's zone; the calendar day decides the bucket, not the hours
	// between the two instants.
	todayUTC := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{
			name: "evening behind UTC",
			now:  time.Date(2025, 9, 1, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
		},
		{
			name: "early morning ahead of UTC",
			now:  time.Date(2025, 9, 1, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := []*domain.Booking{
				alertBooking(todayUTC, domain.StatusConfirmed, ptr.Ptr(int64(1))),
			}

			alerts := deriveAlerts(bookings, tt.now)

			agenda := alertByType(t, alerts, AlertTodayAgenda)
			assert.Equal(t, 1, agenda.Count)
			for _, a := range alerts {
				assert.NotEqual(t, AlertOverdue, a.Type)
			}
		})
	}
}

func TestDeriveAlerts_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		alertBooking(today.Truncate(24*time.Hour), domain.StatusPending, nil),
		alertBooking(today.AddDate(0, 0, -3), domain.StatusConfirmed, ptr.Ptr(int64(2))),
	}

	first := deriveAlerts(bookings, today)
	second := deriveAlerts(bookings, today)

	require.Equal(t, first, second)
	assert.Len(t, first, 3)
}
