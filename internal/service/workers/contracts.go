package workers

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// WorkerRepository is the worker-credential storage interface.
type WorkerRepository interface {
	Create(ctx context.Context, w *domain.Worker) (*domain.Worker, error)
	GetByUsername(ctx context.Context, username string) (*domain.Worker, error)
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// StaffRepository checks that the credential links to a real team member.
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
