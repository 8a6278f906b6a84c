package locations

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// LocationRepository is the service-area storage interface.
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
