package bookings

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// StaffRepository is the staff-counter interface used when a booking
// reaches the done status.
type StaffRepository interface {
	IncrementJobsCompleted(ctx context.Context, id int64) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
