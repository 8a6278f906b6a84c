package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	taskRepo "github.com/sparkleclean/booking-service/internal/infra/storage/task"
	"github.com/sparkleclean/booking-service/pkg/ptr"
)

type fakeTaskRepo struct {
	byID map[int64]*domain.Task

	lastFilter taskRepo.TasksFilter
	updated    *domain.Task
	deletedID  *int64
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	stored := *t
	stored.ID = 1
	return &stored, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, taskRepo.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTaskRepo) List(ctx context.Context, filter taskRepo.TasksFilter) ([]*domain.Task, error) {
	f.lastFilter = filter
	ts := make([]*domain.Task, 0, len(f.byID))
	for _, t := range f.byID {
		ts = append(ts, t)
	}
	return ts, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	if _, ok := f.byID[t.ID]; !ok {
		return taskRepo.ErrTaskNotFound
	}
	f.updated = t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return taskRepo.ErrTaskNotFound
	}
	f.deletedID = &id
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func storedTask(id int64, assignedTo *int64) *domain.Task {
	return &domain.Task{
		ID:         id,
		BookingID:  10,
		AssignedTo: assignedTo,
		Title:      "Bring supplies",
		Status:     domain.TaskPending,
	}
}

func TestService_Create(t *testing.T) {
	svc := NewService(&fakeTaskRepo{}, noopLogger{})

	resp, err := svc.Create(context.Background(), &CreateTaskRequest{
		BookingID: 10,
		Title:     "Bring supplies",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.Create(context.Background(), &CreateTaskRequest{Title: "no booking"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &CreateTaskRequest{BookingID: 10, Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_WorkerRestriction(t *testing.T) {
	tests := []struct {
		name     string
		task     *domain.Task
		restrict *int64
		wantErr  error
	}{
		{
			name:     "worker progresses own task",
			task:     storedTask(1, ptr.Ptr(int64(3))),
			restrict: ptr.Ptr(int64(3)),
		},
		{
			name:     "worker denied on another's task",
			task:     storedTask(1, ptr.Ptr(int64(4))),
			restrict: ptr.Ptr(int64(3)),
			wantErr:  ErrAccessDenied,
		},
		{
			name:     "worker denied on unassigned task",
			task:     storedTask(1, nil),
			restrict: ptr.Ptr(int64(3)),
			wantErr:  ErrAccessDenied,
		},
		{
			name: "admin progresses any task",
			task: storedTask(1, ptr.Ptr(int64(4))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTaskRepo{byID: map[int64]*domain.Task{1: tt.task}}
			svc := NewService(repo, noopLogger{})

			resp, err := svc.UpdateStatus(context.Background(), 1, &UpdateStatusRequest{
				Status:          "in_progress",
				RestrictToStaff: tt.restrict,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "in_progress", resp.Status)
		})
	}
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeTaskRepo{byID: map[int64]*domain.Task{1: storedTask(1, nil)}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &UpdateStatusRequest{Status: "paused"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	repo := &fakeTaskRepo{byID: map[int64]*domain.Task{1: storedTask(1, nil)}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), 1, &UpdateTaskRequest{
		AssignedTo:  ptr.Ptr(int64(5)),
		Title:       "Bring extra supplies",
		Description: "Client asked for eco products",
		Status:      "done",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Status)
	require.NotNil(t, resp.AssignedTo)
	assert.Equal(t, int64(5), *resp.AssignedTo)

	_, err = svc.Update(context.Background(), 99, &UpdateTaskRequest{Title: "x", Status: "pending"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestService_List_PassesFilters(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := NewService(repo, noopLogger{})

	_, err := svc.List(context.Background(), &ListTasksRequest{
		BookingID:  ptr.Ptr(int64(10)),
		AssignedTo: ptr.Ptr(int64(3)),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.BookingID)
	assert.Equal(t, int64(10), *repo.lastFilter.BookingID)
	require.NotNil(t, repo.lastFilter.AssignedTo)
	assert.Equal(t, int64(3), *repo.lastFilter.AssignedTo)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeTaskRepo{byID: map[int64]*domain.Task{1: storedTask(1, nil)}}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrTaskNotFound)
}
