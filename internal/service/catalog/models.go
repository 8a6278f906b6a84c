package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// ServiceRequest creates or overwrites a catalog entry.
type ServiceRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	ImageURL        string  `json:"imageUrl"`
	Active          bool    `json:"active"`
}

// ServiceResponse is the catalog entry DTO.
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration"`
	ImageURL        string    `json:"imageUrl"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse is the catalog list DTO.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func (r *ServiceRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.DurationMinutes < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

func fromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		ImageURL:        s.ImageURL,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func fromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if r := fromDomainService(s); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}
	return resp
}
