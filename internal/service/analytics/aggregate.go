package analytics

import (
	"math"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const trailingMonths = 6

func buildOverview(bookings []*domain.Booking) Overview {
	var totalRevenue, completedRevenue float64
	var completedCount int

	for _, b := range bookings {
		if b.Payment.Status == domain.PaymentStatusPaid {
			totalRevenue += b.Payment.Amount
		}
		if b.Status == domain.StatusDone {
			completedCount++
			if b.Payment.Status == domain.PaymentStatusPaid {
				completedRevenue += b.Payment.Amount
			}
		}
	}

	unique, repeat := customerCounts(bookings)

	return Overview{
		TotalRevenue:      totalRevenue,
		CompletedRevenue:  completedRevenue,
		TotalBookings:     len(bookings),
		CompletedBookings: completedCount,
		UniqueCustomers:   unique,
		RetentionRate:     retentionRate(unique, repeat),
	}
}

func customerCounts(bookings []*domain.Booking) (unique, repeat int) {
	perEmail := make(map[string]int)
	for _, b := range bookings {
		perEmail[b.Email]++
	}

	for _, n := range perEmail {
		unique++
		if n > 1 {
			repeat++
		}
	}
	return unique, repeat
}

// retentionRate is repeat/unique as a percentage, one decimal, and zero
// when there are no customers at all.
func retentionRate(unique, repeat int) float64 {
	if unique == 0 {
		return 0
	}
	rate := float64(repeat) / float64(unique) * 100
	return math.Round(rate*10) / 10
}

// buildMonthlyRevenue buckets payment amounts by booking creation month
// over the trailing six months, oldest first. Bookings without a stored
// creation time fall back to their scheduled date.
func buildMonthlyRevenue(bookings []*domain.Booking, now time.Time) []MonthRevenue {
	months := make([]MonthRevenue, 0, trailingMonths)
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := trailingMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0)

		var revenue float64
		for _, b := range bookings {
			year, bucket := bucketMonth(b, now.Location())
			if year == month.Year() && bucket == month.Month() {
				revenue += b.Payment.Amount
			}
		}

		months = append(months, MonthRevenue{
			Month:   month.Format("Jan"),
			Revenue: revenue,
		})
	}

	return months
}

// bucketMonth returns the calendar month a booking belongs to. Creation
// timestamps are instants and read in the report clock's zone; scheduled
// dates scan out of the DATE column at UTC midnight and keep their UTC
// calendar day.
func bucketMonth(b *domain.Booking, loc *time.Location) (int, time.Month) {
	if b.CreatedAt.IsZero() {
		d := b.Date.In(time.UTC)
		return d.Year(), d.Month()
	}
	at := b.CreatedAt.In(loc)
	return at.Year(), at.Month()
}

func buildServiceStats(bookings []*domain.Booking, services []*domain.Service) []ServiceStat {
	stats := make([]ServiceStat, 0, len(services))

	for _, svc := range services {
		stat := ServiceStat{ID: svc.ID, Name: svc.Title}
		for _, b := range bookings {
			if b.ServiceID != svc.ID {
				continue
			}
			stat.Count++
			stat.Revenue += b.Payment.Amount
		}
		stats = append(stats, stat)
	}

	return stats
}

func buildStaffPerformance(bookings []*domain.Booking, staff []*domain.Staff) []StaffPerformance {
	perf := make([]StaffPerformance, 0, len(staff))

	for _, member := range staff {
		p := StaffPerformance{ID: member.ID, Name: member.Name}
		for _, b := range bookings {
			if b.AssignedTo == nil || *b.AssignedTo != member.ID {
				continue
			}
			p.Revenue += b.Payment.Amount
			if b.Status == domain.StatusDone {
				p.JobsCompleted++
			}
		}
		perf = append(perf, p)
	}

	return perf
}

func buildDemandTrends(bookings []*domain.Booking) DemandTrends {
	var counts [7]int
	for _, b := range bookings {
		counts[int(b.Date.Weekday())]++
	}

	byDay := make([]DayOfWeekCount, 7)
	for i, label := range weekdayLabels {
		byDay[i] = DayOfWeekCount{Day: label, Count: counts[i]}
	}

	return DemandTrends{ByDayOfWeek: byDay}
}
