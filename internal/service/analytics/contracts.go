package analytics

import (
	"context"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// StaffRepository is the staff storage interface.
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.Staff, error)
}

// ServiceRepository is the service-catalog storage interface.
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}

// TimeProvider supplies the current time. Injected so the trailing
// monthly window is deterministic in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
