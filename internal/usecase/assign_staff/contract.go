package assign_staff

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateAssignment(ctx context.Context, id int64, staffID *int64, status domain.BookingStatus) error
}

// StaffRepository resolves the staff member being assigned.
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// TransactionManager runs the conflict check and assignment atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
