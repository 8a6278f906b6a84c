package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
)

type fakeStaffRepo struct {
	byID map[int64]*domain.Staff

	created *domain.Staff
	updated *domain.Staff
}

func (f *fakeStaffRepo) Create(ctx context.Context, m *domain.Staff) (*domain.Staff, error) {
	stored := *m
	stored.ID = 1
	f.created = &stored
	return &stored, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeStaffRepo) List(ctx context.Context) ([]*domain.Staff, error) {
	ms := make([]*domain.Staff, 0, len(f.byID))
	for _, m := range f.byID {
		ms = append(ms, m)
	}
	return ms, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, m *domain.Staff) error {
	if _, ok := f.byID[m.ID]; !ok {
		return staffRepo.ErrStaffNotFound
	}
	f.updated = m
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return staffRepo.ErrStaffNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeWorkerRepo struct {
	deletedStaffID *int64
}

func (f *fakeWorkerRepo) DeleteByStaffID(ctx context.Context, staffID int64) error {
	f.deletedStaffID = &staffID
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Create(t *testing.T) {
	repo := &fakeStaffRepo{}
	svc := NewService(repo, &fakeWorkerRepo{}, noopLogger{})

	resp, err := svc.Create(context.Background(), &CreateStaffRequest{
		Name:  "Maria",
		Email: "maria@example.com",
		Role:  "cleaner",
	})
	require.NoError(t, err)

	// Status defaults to active when omitted.
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "cleaner", resp.Role)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(&fakeStaffRepo{}, &fakeWorkerRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *CreateStaffRequest
	}{
		{name: "missing name", req: &CreateStaffRequest{Email: "m@example.com", Role: "cleaner"}},
		{name: "missing email", req: &CreateStaffRequest{Name: "Maria", Role: "cleaner"}},
		{name: "unknown role", req: &CreateStaffRequest{Name: "Maria", Email: "m@example.com", Role: "janitor"}},
		{name: "unknown status", req: &CreateStaffRequest{Name: "Maria", Email: "m@example.com", Role: "cleaner", Status: "away"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update(t *testing.T) {
	repo := &fakeStaffRepo{byID: map[int64]*domain.Staff{
		3: {ID: 3, Name: "Maria", Email: "maria@example.com", Role: domain.RoleCleaner, Status: domain.StaffActive, JobsCompleted: 12},
	}}
	svc := NewService(repo, &fakeWorkerRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 3, &UpdateStaffRequest{
		Name:              "Maria K.",
		Email:             "maria@example.com",
		Role:              "supervisor",
		Status:            "inactive",
		PerformanceRating: 4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "supervisor", resp.Role)
	assert.Equal(t, "inactive", resp.Status)
	// The completed-jobs counter is owned by the booking flow, not the form.
	assert.Equal(t, 12, resp.JobsCompleted)

	_, err = svc.Update(context.Background(), 99, &UpdateStaffRequest{Role: "cleaner", Status: "active"})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestService_Delete_RemovesCredential(t *testing.T) {
	repo := &fakeStaffRepo{byID: map[int64]*domain.Staff{3: {ID: 3}}}
	workers := &fakeWorkerRepo{}
	svc := NewService(repo, workers, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 3))

	require.NotNil(t, workers.deletedStaffID)
	assert.Equal(t, int64(3), *workers.deletedStaffID)

	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrStaffNotFound)
}
