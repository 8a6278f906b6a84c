package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
)

// Service manages the cleaning team roster.
type Service struct {
	staffRepo  StaffRepository
	workerRepo WorkerRepository
	logger     Logger
}

func NewService(staffRepo StaffRepository, workerRepo WorkerRepository, logger Logger) *Service {
	return &Service{
		staffRepo:  staffRepo,
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// List fetches all staff members, active first.
func (s *Service) List(ctx context.Context) (*StaffListResponse, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return fromDomainStaffList(members), nil
}

// GetByID fetches one staff member.
func (s *Service) GetByID(ctx context.Context, id int64) (*StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return fromDomainStaff(member), nil
}

// Create adds a team member.
func (s *Service) Create(ctx context.Context, req *CreateStaffRequest) (*StaffResponse, error) {
	member, err := req.toDomain()
	if err != nil {
		s.logger.Warn("Create: invalid staff data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: staff id=%d created", created.ID)
	return fromDomainStaff(created), nil
}

// Update overwrites the editable fields of a staff member.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateStaffRequest) (*StaffResponse, error) {
	role, err := domain.ParseStaffRole(req.Role)
	if err != nil {
		s.logger.Warn("Update: invalid role=%s for staff id=%d", req.Role, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	status, err := domain.ParseStaffStatus(req.Status)
	if err != nil {
		s.logger.Warn("Update: invalid status=%s for staff id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Update: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone
	member.Role = role
	member.Status = status
	member.PerformanceRating = req.PerformanceRating

	if err := s.staffRepo.Update(ctx, member); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: staff id=%d updated", id)
	return fromDomainStaff(member), nil
}

// Delete removes a staff member and the login credential linked to them.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Delete: staff id=%d not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for staff id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// The FK already cascades; the explicit call keeps the credential
	// cleanup visible and covered when the schema changes.
	if err := s.workerRepo.DeleteByStaffID(ctx, id); err != nil {
		s.logger.Warn("Delete: failed to remove credential for staff id=%d: %v", id, err)
	}

	s.logger.Info("Delete: staff id=%d removed", id)
	return nil
}
