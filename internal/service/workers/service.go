package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sparkleclean/booking-service/internal/domain"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
	workerRepo "github.com/sparkleclean/booking-service/internal/infra/storage/worker"
)

const minPasswordLength = 8

// Service issues and verifies worker login credentials. Passwords are
// stored only as bcrypt hashes and compared with bcrypt's constant-time
// comparison.
type Service struct {
	workerRepo WorkerRepository
	staffRepo  StaffRepository
	logger     Logger
}

func NewService(workerRepo WorkerRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		workerRepo: workerRepo,
		staffRepo:  staffRepo,
		logger:     logger,
	}
}

// List fetches all worker credentials, sanitized.
func (s *Service) List(ctx context.Context) (*WorkerListResponse, error) {
	ws, err := s.workerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return fromDomainWorkerList(ws), nil
}

// IssueCredential creates a login for an existing staff member.
func (s *Service) IssueCredential(ctx context.Context, req *IssueCredentialRequest) (*WorkerResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("IssueCredential: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("IssueCredential: staff lookup failed for id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: IssueCredential - staff lookup: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("IssueCredential: hashing failed: %v", err)
		return nil, fmt.Errorf("%w: IssueCredential - hash password: %v", ErrInternal, err)
	}

	worker := &domain.Worker{
		StaffID:      req.StaffID,
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         member.Name,
	}

	created, err := s.workerRepo.Create(ctx, worker)
	if err != nil {
		if errors.Is(err, workerRepo.ErrUsernameTaken) {
			s.logger.Warn("IssueCredential: username=%s already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("IssueCredential: repository error: %v", err)
		return nil, fmt.Errorf("%w: IssueCredential - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("IssueCredential: worker id=%d created for staff id=%d", created.ID, req.StaffID)
	return fromDomainWorker(created), nil
}

// ResetPassword replaces a worker's password with a new bcrypt hash.
func (s *Service) ResetPassword(ctx context.Context, id int64, req *ResetPasswordRequest) error {
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ResetPassword: hashing failed: %v", err)
		return fmt.Errorf("%w: ResetPassword - hash password: %v", ErrInternal, err)
	}

	if err := s.workerRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			s.logger.Warn("ResetPassword: worker id=%d not found", id)
			return ErrWorkerNotFound
		}
		s.logger.Error("ResetPassword: repository error for worker id=%d: %v", id, err)
		return fmt.Errorf("%w: ResetPassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetPassword: worker id=%d password replaced", id)
	return nil
}

// Authenticate verifies a worker login and returns the sanitized worker.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *Service) Authenticate(ctx context.Context, req *LoginRequest) (*WorkerResponse, error) {
	worker, err := s.workerRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			s.logger.Warn("Authenticate: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Authenticate: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: worker id=%d logged in", worker.ID)
	return fromDomainWorker(worker), nil
}
