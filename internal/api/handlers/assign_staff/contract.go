package assign_staff

import (
	"context"

	assignStaff "github.com/sparkleclean/booking-service/internal/usecase/assign_staff"
)

type AssignStaffUseCase interface {
	Execute(ctx context.Context, req *assignStaff.Request) (*assignStaff.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
