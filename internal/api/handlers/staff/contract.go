package staff

import (
	"context"

	staffSvc "github.com/sparkleclean/booking-service/internal/service/staff"
)

type StaffService interface {
	List(ctx context.Context) (*staffSvc.StaffListResponse, error)
	GetByID(ctx context.Context, id int64) (*staffSvc.StaffResponse, error)
	Create(ctx context.Context, req *staffSvc.CreateStaffRequest) (*staffSvc.StaffResponse, error)
	Update(ctx context.Context, id int64, req *staffSvc.UpdateStaffRequest) (*staffSvc.StaffResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
