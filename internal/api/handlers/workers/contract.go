package workers

import (
	"context"

	workersSvc "github.com/sparkleclean/booking-service/internal/service/workers"
)

type WorkersService interface {
	List(ctx context.Context) (*workersSvc.WorkerListResponse, error)
	IssueCredential(ctx context.Context, req *workersSvc.IssueCredentialRequest) (*workersSvc.WorkerResponse, error)
	ResetPassword(ctx context.Context, id int64, req *workersSvc.ResetPasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
