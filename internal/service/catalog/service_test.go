package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	catalogRepo "github.com/sparkleclean/booking-service/internal/infra/storage/catalog"
)

type fakeServiceRepo struct {
	byID map[int64]*domain.Service

	lastActiveOnly bool
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	stored := *s
	stored.ID = 1
	return &stored, nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	f.lastActiveOnly = activeOnly
	ss := make([]*domain.Service, 0, len(f.byID))
	for _, s := range f.byID {
		if activeOnly && !s.Active {
			continue
		}
		ss = append(ss, s)
	}
	return ss, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	if _, ok := f.byID[s.ID]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(f.byID, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, noopLogger{})

	tests := []struct {
		name    string
		req     *ServiceRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  &ServiceRequest{Title: "Deep Clean", Price: 150, DurationMinutes: 120, Active: true},
		},
		{
			name:    "blank title",
			req:     &ServiceRequest{Title: "  ", Price: 150},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			req:     &ServiceRequest{Title: "Deep Clean", Price: -1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative duration",
			req:     &ServiceRequest{Title: "Deep Clean", DurationMinutes: -30},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Deep Clean", resp.Title)
		})
	}
}

func TestService_List_ActiveOnly(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{
		1: {ID: 1, Title: "Standard Clean", Active: true},
		2: {ID: 2, Title: "Legacy Package", Active: false},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)

	assert.True(t, repo.lastActiveOnly)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Standard Clean", resp.Services[0].Title)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, noopLogger{})

	_, err := svc.Update(context.Background(), 99, &ServiceRequest{Title: "Deep Clean"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeServiceRepo{byID: map[int64]*domain.Service{1: {ID: 1}}}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrServiceNotFound)
}
