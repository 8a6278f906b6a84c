package notifications

import (
	"fmt"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// Alert types emitted by the derivation below.
const (
	AlertTodayAgenda = "today_agenda"
	AlertUnassigned  = "unassigned_bookings"
	AlertOverdue     = "overdue_bookings"
)

// deriveAlerts scans the booking set relative to today and produces the
// three system alerts. Pure: the same bookings and date always yield the
// same alerts, and nothing is written anywhere. An alert is emitted only
// when its count is positive.
func deriveAlerts(bookings []*domain.Booking, today time.Time) []domain.SystemAlert {
	// Booking dates scan out of the DATE column at UTC midnight while the
	// clock runs in server-local time, so compare calendar days, not
	// absolute instants.
	day := today.Format(domain.DateFormat)

	var todayCount, unassignedCount, overdueCount int
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		bookingDay := b.Date.In(time.UTC).Format(domain.DateFormat)
		switch {
		case bookingDay == day:
			todayCount++
		case bookingDay < day:
			overdueCount++
		}

		if !b.IsAssigned() {
			unassignedCount++
		}
	}

	alerts := make([]domain.SystemAlert, 0, 3)

	if todayCount > 0 {
		alerts = append(alerts, domain.SystemAlert{
			Type:     AlertTodayAgenda,
			Title:    "Today's Schedule",
			Message:  fmt.Sprintf("%d booking(s) scheduled for today", todayCount),
			Priority: domain.AlertPriorityHigh,
			Count:    todayCount,
		})
	}

	if unassignedCount > 0 {
		alerts = append(alerts, domain.SystemAlert{
			Type:     AlertUnassigned,
			Title:    "Unassigned Bookings",
			Message:  fmt.Sprintf("%d active booking(s) have no staff assigned", unassignedCount),
			Priority: domain.AlertPriorityCritical,
			Count:    unassignedCount,
		})
	}

	if overdueCount > 0 {
		alerts = append(alerts, domain.SystemAlert{
			Type:     AlertOverdue,
			Title:    "Overdue Bookings",
			Message:  fmt.Sprintf("%d booking(s) are past their date and not completed", overdueCount),
			Priority: domain.AlertPriorityCritical,
			Count:    overdueCount,
		})
	}

	return alerts
}
