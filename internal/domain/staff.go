package domain

import (
	"fmt"
	"time"
)

// StaffRole is the position of a cleaning employee.
type StaffRole string

const (
	RoleCleaner    StaffRole = "cleaner"
	RoleSupervisor StaffRole = "supervisor"
	RoleManager    StaffRole = "manager"
)

// ParseStaffRole validates a staff role string.
func ParseStaffRole(s string) (StaffRole, error) {
	switch r := StaffRole(s); r {
	case RoleCleaner, RoleSupervisor, RoleManager:
		return r, nil
	}
	return "", fmt.Errorf("unknown staff role %q", s)
}

// StaffStatus is the employment state of a staff member.
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

// ParseStaffStatus validates a staff status string.
func ParseStaffStatus(s string) (StaffStatus, error) {
	switch st := StaffStatus(s); st {
	case StaffActive, StaffInactive:
		return st, nil
	}
	return "", fmt.Errorf("unknown staff status %q", s)
}

// Staff represents a cleaning employee.
type Staff struct {
	ID                int64
	Name              string
	Email             string
	Phone             string
	Role              StaffRole
	Status            StaffStatus
	JobsCompleted     int
	PerformanceRating float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the staff member can be assigned work.
func (s *Staff) IsActive() bool {
	return s.Status == StaffActive
}
