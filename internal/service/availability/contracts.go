package availability

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeSlotProvider supplies the configured time-slot document.
type TimeSlotProvider interface {
	GetTimeSlots(ctx context.Context) (*domain.TimeSlotConfig, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
