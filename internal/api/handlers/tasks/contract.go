package tasks

import (
	"context"

	tasksSvc "github.com/sparkleclean/booking-service/internal/service/tasks"
)

type TasksService interface {
	List(ctx context.Context, req *tasksSvc.ListTasksRequest) (*tasksSvc.TaskListResponse, error)
	Create(ctx context.Context, req *tasksSvc.CreateTaskRequest) (*tasksSvc.TaskResponse, error)
	Update(ctx context.Context, id int64, req *tasksSvc.UpdateTaskRequest) (*tasksSvc.TaskResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *tasksSvc.UpdateStatusRequest) (*tasksSvc.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
