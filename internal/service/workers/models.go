package workers

import (
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// IssueCredentialRequest creates a login for a staff member.
type IssueCredentialRequest struct {
	StaffID  int64  `json:"staffId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetPasswordRequest replaces a worker's password.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// LoginRequest is the worker login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WorkerResponse is the worker DTO. The password hash never leaves the
// service layer.
type WorkerResponse struct {
	ID        int64     `json:"id"`
	StaffID   int64     `json:"staffId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkerListResponse is the worker list DTO.
type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

func fromDomainWorker(w *domain.Worker) *WorkerResponse {
	if w == nil {
		return nil
	}
	return &WorkerResponse{
		ID:        w.ID,
		StaffID:   w.StaffID,
		Username:  w.Username,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func fromDomainWorkerList(ws []*domain.Worker) *WorkerListResponse {
	resp := &WorkerListResponse{Workers: make([]WorkerResponse, 0, len(ws))}
	for _, w := range ws {
		if r := fromDomainWorker(w); r != nil {
			resp.Workers = append(resp.Workers, *r)
		}
	}
	return resp
}
