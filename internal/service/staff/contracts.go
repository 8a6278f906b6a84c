package staff

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// StaffRepository is the staff storage interface.
type StaffRepository interface {
	Create(ctx context.Context, member *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context) ([]*domain.Staff, error)
	Update(ctx context.Context, member *domain.Staff) error
	Delete(ctx context.Context, id int64) error
}

// WorkerRepository removes the login credential linked to a staff member.
type WorkerRepository interface {
	DeleteByStaffID(ctx context.Context, staffID int64) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
