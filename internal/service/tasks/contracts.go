package tasks

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
	taskRepo "github.com/sparkleclean/booking-service/internal/infra/storage/task"
)

// TaskRepository is the task storage interface.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter taskRepo.TasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
