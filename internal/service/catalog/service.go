package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	catalogRepo "github.com/sparkleclean/booking-service/internal/infra/storage/catalog"
)

// Service manages the cleaning-service catalog.
type Service struct {
	repo   ServiceRepository
	logger Logger
}

func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List fetches catalog entries. activeOnly is set on the public surface.
func (s *Service) List(ctx context.Context, activeOnly bool) (*ServiceListResponse, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return fromDomainServiceList(services), nil
}

// GetByID fetches one catalog entry.
func (s *Service) GetByID(ctx context.Context, id int64) (*ServiceResponse, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return fromDomainService(svc), nil
}

// Create adds a catalog entry.
func (s *Service) Create(ctx context.Context, req *ServiceRequest) (*ServiceResponse, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Create: invalid service data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, &domain.Service{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d created", created.ID)
	return fromDomainService(created), nil
}

// Update overwrites a catalog entry.
func (s *Service) Update(ctx context.Context, id int64, req *ServiceRequest) (*ServiceResponse, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Update: invalid service data for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	svc := &domain.Service{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Active:          req.Active,
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%d updated", id)
	return fromDomainService(svc), nil
}

// Delete removes a catalog entry permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%d removed", id)
	return nil
}
