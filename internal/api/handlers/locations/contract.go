package locations

import (
	"context"

	locationsSvc "github.com/sparkleclean/booking-service/internal/service/locations"
)

type LocationsService interface {
	List(ctx context.Context) (*locationsSvc.LocationListResponse, error)
	Create(ctx context.Context, req *locationsSvc.LocationRequest) (*locationsSvc.LocationResponse, error)
	Update(ctx context.Context, id int64, req *locationsSvc.LocationRequest) (*locationsSvc.LocationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
