package create_booking

import (
	"context"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// BookingRepository is the booking storage interface.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceCatalog resolves the requested cleaning service.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SettingsProvider supplies the company settings and the time-slot
// configuration documents.
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	GetTimeSlots(ctx context.Context) (*domain.TimeSlotConfig, error)
}

// TransactionManager runs the slot check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swapped in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
