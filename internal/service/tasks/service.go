package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
	taskRepo "github.com/sparkleclean/booking-service/internal/infra/storage/task"
)

// CreateTaskRequest attaches a to-do item to a booking.
type CreateTaskRequest struct {
	BookingID   int64  `json:"bookingId"`
	AssignedTo  *int64 `json:"assignedTo,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest overwrites the editable fields.
type UpdateTaskRequest struct {
	AssignedTo  *int64 `json:"assignedTo,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateStatusRequest progresses a task. RestrictToStaff is set for
// worker tokens so they can only touch their own tasks.
type UpdateStatusRequest struct {
	Status          string `json:"status"`
	RestrictToStaff *int64 `json:"-"`
}

// ListTasksRequest filters the task list.
type ListTasksRequest struct {
	BookingID  *int64 `json:"bookingId,omitempty"`
	AssignedTo *int64 `json:"assignedTo,omitempty"`
}

// TaskResponse is the task DTO.
type TaskResponse struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"bookingId"`
	AssignedTo  *int64    `json:"assignedTo,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskListResponse is the task list DTO.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// Service manages booking to-do items.
type Service struct {
	repo   TaskRepository
	logger Logger
}

func NewService(repo TaskRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List fetches tasks with optional booking and staff filters.
func (s *Service) List(ctx context.Context, req *ListTasksRequest) (*TaskListResponse, error) {
	ts, err := s.repo.List(ctx, taskRepo.TasksFilter{
		BookingID:  req.BookingID,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &TaskListResponse{Tasks: make([]TaskResponse, 0, len(ts))}
	for _, t := range ts {
		resp.Tasks = append(resp.Tasks, fromDomainTask(t))
	}
	return resp, nil
}

// Create attaches a task to a booking, starting at pending.
func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Task{
		BookingID:   req.BookingID,
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskPending,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: task id=%d created for booking id=%d", created.ID, req.BookingID)
	resp := fromDomainTask(created)
	return &resp, nil
}

// Update overwrites the editable fields of a task.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateTaskRequest) (*TaskResponse, error) {
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for task id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	task, err := s.getTask(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	task.AssignedTo = req.AssignedTo
	task.Title = req.Title
	task.Description = req.Description
	task.Status = status

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("Update: repository error for task id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: task id=%d updated", id)
	resp := fromDomainTask(task)
	return &resp, nil
}

// UpdateStatus progresses a task. Worker tokens may only progress tasks
// assigned to their own staff id.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*TaskResponse, error) {
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for task id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	task, err := s.getTask(ctx, id, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if req.RestrictToStaff != nil {
		if task.AssignedTo == nil || *task.AssignedTo != *req.RestrictToStaff {
			s.logger.Warn("UpdateStatus: staff id=%d denied on task id=%d", *req.RestrictToStaff, id)
			return nil, ErrAccessDenied
		}
	}

	task.Status = status
	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: task id=%d moved to status=%s", id, status)
	resp := fromDomainTask(task)
	return &resp, nil
}

// Delete removes a task permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("Delete: task id=%d not found", id)
			return ErrTaskNotFound
		}
		s.logger.Error("Delete: repository error for task id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: task id=%d removed", id)
	return nil
}

func (s *Service) getTask(ctx context.Context, id int64, method string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("%s: task id=%d not found", method, id)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("%s: repository error for task id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return task, nil
}

func fromDomainTask(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		BookingID:   t.BookingID,
		AssignedTo:  t.AssignedTo,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
