package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
	locationRepo "github.com/sparkleclean/booking-service/internal/infra/storage/location"
)

// LocationRequest creates or overwrites a service area.
type LocationRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
}

// LocationResponse is the service-area DTO.
type LocationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LocationListResponse is the service-area list DTO.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// Service manages the areas the company serves.
type Service struct {
	repo   LocationRepository
	logger Logger
}

func NewService(repo LocationRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List fetches all service areas.
func (s *Service) List(ctx context.Context) (*LocationListResponse, error) {
	locs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &LocationListResponse{Locations: make([]LocationResponse, 0, len(locs))}
	for _, loc := range locs {
		resp.Locations = append(resp.Locations, fromDomainLocation(loc))
	}
	return resp, nil
}

// Create adds a service area.
func (s *Service) Create(ctx context.Context, req *LocationRequest) (*LocationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: missing location name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Location{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  req.Active,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: location id=%d created", created.ID)
	resp := fromDomainLocation(created)
	return &resp, nil
}

// Update overwrites a service area.
func (s *Service) Update(ctx context.Context, id int64, req *LocationRequest) (*LocationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Update: missing location name for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	loc := &domain.Location{
		ID:      id,
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  req.Active,
	}

	if err := s.repo.Update(ctx, loc); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Update: location id=%d not found", id)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("Update: repository error for location id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: location id=%d updated", id)
	resp := fromDomainLocation(loc)
	return &resp, nil
}

// Delete removes a service area permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Delete: location id=%d not found", id)
			return ErrLocationNotFound
		}
		s.logger.Error("Delete: repository error for location id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: location id=%d removed", id)
	return nil
}

func fromDomainLocation(loc *domain.Location) LocationResponse {
	return LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		City:      loc.City,
		Address:   loc.Address,
		Phone:     loc.Phone,
		Active:    loc.Active,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}
