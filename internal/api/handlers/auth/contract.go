package auth

import (
	"context"

	workersSvc "github.com/sparkleclean/booking-service/internal/service/workers"
)

type WorkersService interface {
	Authenticate(ctx context.Context, req *workersSvc.LoginRequest) (*workersSvc.WorkerResponse, error)
}

type TokenIssuer interface {
	Issue(subject, role, name string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
