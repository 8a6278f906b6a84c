package notifications

import (
	"context"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// NotificationRepository is the append-only notification log.
type NotificationRepository interface {
	Append(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Notification, error)
}

// BookingRepository is the booking storage interface used for alert
// derivation.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time for "today" comparisons.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
