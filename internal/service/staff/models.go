package staff

import (
	"fmt"
	"strings"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// CreateStaffRequest adds a team member.
type CreateStaffRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status,omitempty"` // defaults to active
}

// UpdateStaffRequest overwrites the editable fields.
type UpdateStaffRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Role              string  `json:"role"`
	Status            string  `json:"status"`
	PerformanceRating float64 `json:"performanceRating"`
}

// StaffResponse is the staff DTO.
type StaffResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Role              string    `json:"role"`
	Status            string    `json:"status"`
	JobsCompleted     int       `json:"jobsCompleted"`
	PerformanceRating float64   `json:"performanceRating"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// StaffListResponse is the staff list DTO.
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

func (r *CreateStaffRequest) toDomain() (*domain.Staff, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	role, err := domain.ParseStaffRole(r.Role)
	if err != nil {
		return nil, err
	}

	status := domain.StaffActive
	if r.Status != "" {
		status, err = domain.ParseStaffStatus(r.Status)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Staff{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Role:   role,
		Status: status,
	}, nil
}

func fromDomainStaff(m *domain.Staff) *StaffResponse {
	if m == nil {
		return nil
	}
	return &StaffResponse{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		Role:              string(m.Role),
		Status:            string(m.Status),
		JobsCompleted:     m.JobsCompleted,
		PerformanceRating: m.PerformanceRating,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromDomainStaffList(members []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(members))}
	for _, m := range members {
		if s := fromDomainStaff(m); s != nil {
			resp.Staff = append(resp.Staff, *s)
		}
	}
	return resp
}
