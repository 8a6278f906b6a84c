package services

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/service/catalog"
)

type CatalogService interface {
	List(ctx context.Context, activeOnly bool) (*catalog.ServiceListResponse, error)
	Create(ctx context.Context, req *catalog.ServiceRequest) (*catalog.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *catalog.ServiceRequest) (*catalog.ServiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
