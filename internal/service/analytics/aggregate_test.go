package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/ptr"
)

func paidBooking(email string, amount float64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		Email:  email,
		Status: status,
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Payment: domain.Payment{
			Method: domain.PaymentMethodCreditCard,
			Amount: amount,
			Status: domain.PaymentStatusPaid,
		},
	}
}

func TestBuildOverview(t *testing.T) {
	pendingPayment := paidBooking("c@example.com", 80, domain.StatusDone)
	pendingPayment.Payment.Status = domain.PaymentStatusPending

	bookings := []*domain.Booking{
		paidBooking("a@example.com", 100, domain.StatusDone),
		paidBooking("a@example.com", 50, domain.StatusConfirmed),
		paidBooking("b@example.com", 70, domain.StatusCancelled),
		pendingPayment,
	}

	overview := buildOverview(bookings)

	// Unsettled amounts stay out of revenue entirely.
	assert.Equal(t, 220.0, overview.TotalRevenue)
	// Completed revenue only counts settled payments on done bookings.
	assert.Equal(t, 100.0, overview.CompletedRevenue)
	assert.Equal(t, 4, overview.TotalBookings)
	assert.Equal(t, 2, overview.CompletedBookings)
	assert.Equal(t, 3, overview.UniqueCustomers)
}

func TestRetentionRate(t *testing.T) {
	tests := []struct {
		name   string
		unique int
		repeat int
		want   float64
	}{
		{name: "no customers", unique: 0, repeat: 0, want: 0},
		{name: "no repeats", unique: 5, repeat: 0, want: 0},
		{name: "one of three", unique: 3, repeat: 1, want: 33.3},
		{name: "all repeat", unique: 4, repeat: 4, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retentionRate(tt.unique, tt.repeat))
		})
	}
}

func TestBuildMonthlyRevenue(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	inWindow := paidBooking("a@example.com", 100, domain.StatusDone)
	inWindow.CreatedAt = time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)

	// Unsettled payments still count toward the monthly trend.
	pendingPayment := paidBooking("b@example.com", 40, domain.StatusPending)
	pendingPayment.Payment.Status = domain.PaymentStatusPending
	pendingPayment.CreatedAt = time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	// No creation time stored: the scheduled date buckets it.
	byDate := paidBooking("c@example.com", 60, domain.StatusConfirmed)
	byDate.Date = time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)

	outOfWindow := paidBooking("d@example.com", 999, domain.StatusDone)
	outOfWindow.CreatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	months := buildMonthlyRevenue([]*domain.Booking{inWindow, pendingPayment, byDate, outOfWindow}, now)

	require.Len(t, months, 6)
	assert.Equal(t, "May", months[0].Month)
	assert.Equal(t, "Oct", months[5].Month)

	byMonth := make(map[string]float64)
	for _, m := range months {
		byMonth[m.Month] = m.Revenue
	}
	assert.Equal(t, 140.0, byMonth["Aug"])
	assert.Equal(t, 60.0, byMonth["Oct"])
	assert.Equal(t, 0.0, byMonth["May"])
}

func TestBuildMonthlyRevenue_NonUTCClock(t *testing.T) {
	// 01:00 local on Oct 1, three hours ahead of UTC.
	now := time.Date(2025, 10, 1, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	// Created 23:00 UTC Sep 30, which is already Oct 1 on the local clock.
	boundary := paidBooking("a@example.com", 100, domain.StatusPending)
	boundary.CreatedAt = time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC)

	// No creation time: the scheduled date keeps its UTC calendar day and
	// must not slide into September.
	scheduled := paidBooking("b@example.com", 40, domain.StatusConfirmed)
	scheduled.Date = time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)

	months := buildMonthlyRevenue([]*domain.Booking{boundary, scheduled}, now)

	require.Len(t, months, 6)
	assert.Equal(t, "Sep", months[4].Month)
	assert.Equal(t, 0.0, months[4].Revenue)
	assert.Equal(t, "Oct", months[5].Month)
	assert.Equal(t, 140.0, months[5].Revenue)
}

func TestBuildServiceStats(t *testing.T) {
	services := []*domain.Service{
		{ID: 1, Title: "Standard Clean"},
		{ID: 2, Title: "Deep Clean"},
	}

	first := paidBooking("a@example.com", 100, domain.StatusDone)
	first.ServiceID = 1
	second := paidBooking("b@example.com", 50, domain.StatusPending)
	second.ServiceID = 1
	third := paidBooking("c@example.com", 200, domain.StatusConfirmed)
	third.ServiceID = 2

	stats := buildServiceStats([]*domain.Booking{first, second, third}, services)

	require.Len(t, stats, 2)
	assert.Equal(t, "Standard Clean", stats[0].Name)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 150.0, stats[0].Revenue)
	assert.Equal(t, 1, stats[1].Count)
	assert.Equal(t, 200.0, stats[1].Revenue)
}

func TestBuildStaffPerformance(t *testing.T) {
	staff := []*domain.Staff{
		{ID: 1, Name: "Maria"},
		{ID: 2, Name: "Tom"},
	}

	done := paidBooking("a@example.com", 100, domain.StatusDone)
	done.AssignedTo = ptr.Ptr(int64(1))
	inProgress := paidBooking("b@example.com", 50, domain.StatusConfirmed)
	inProgress.AssignedTo = ptr.Ptr(int64(1))
	unassigned := paidBooking("c@example.com", 70, domain.StatusPending)

	perf := buildStaffPerformance([]*domain.Booking{done, inProgress, unassigned}, staff)

	require.Len(t, perf, 2)
	assert.Equal(t, 1, perf[0].JobsCompleted)
	assert.Equal(t, 150.0, perf[0].Revenue)
	assert.Zero(t, perf[1].JobsCompleted)
	assert.Zero(t, perf[1].Revenue)
}

func TestBuildDemandTrends(t *testing.T) {
	wednesday := paidBooking("a@example.com", 10, domain.StatusPending)
	wednesday.Date = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC) // Wed
	sunday := paidBooking("b@example.com", 10, domain.StatusPending)
	sunday.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC) // Sun

	trends := buildDemandTrends([]*domain.Booking{wednesday, wednesday, sunday})

	require.Len(t, trends.ByDayOfWeek, 7)
	assert.Equal(t, "Sun", trends.ByDayOfWeek[0].Day)
	assert.Equal(t, 1, trends.ByDayOfWeek[0].Count)
	assert.Equal(t, "Wed", trends.ByDayOfWeek[3].Day)
	assert.Equal(t, 2, trends.ByDayOfWeek[3].Count)
}
