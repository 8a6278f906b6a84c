package models

import (
	"errors"
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate is returned for a date not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")
)

// Request models

// ListBookingsRequest filters the booking list.
type ListBookingsRequest struct {
	Date            *string `json:"date,omitempty"` // YYYY-MM-DD
	Status          *string `json:"status,omitempty"`
	AssignedTo      *int64  `json:"assignedTo,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		AssignedTo:      r.AssignedTo,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
		// an explicit status filter overrides the active-only default
		filter.IncludeInactive = true
	}

	return filter, nil
}

// UpdateStatusRequest moves a booking along its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentRequest partially updates the embedded payment. Only the
// provided fields change.
type UpdatePaymentRequest struct {
	Method *string  `json:"method,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// ToDomainPatch validates and converts the request into a payment patch.
func (r *UpdatePaymentRequest) ToDomainPatch() (domain.PaymentPatch, error) {
	var patch domain.PaymentPatch

	if r.Method != nil {
		method, err := domain.ParsePaymentMethod(*r.Method)
		if err != nil {
			return patch, err
		}
		patch.Method = &method
	}

	if r.Status != nil {
		status, err := domain.ParsePaymentStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	patch.Amount = r.Amount

	return patch, nil
}

// Response models

// PaymentResponse is the embedded payment block.
type PaymentResponse struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// BookingResponse is the booking DTO.
type BookingResponse struct {
	ID           int64           `json:"id"`
	CleaningCode string          `json:"cleaningCode"`
	ServiceID    int64           `json:"serviceId"`
	Date         string          `json:"date"` // "2025-10-15"
	Time         string          `json:"time"` // "10:00"
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Notes        *string         `json:"notes,omitempty"`
	Status       string          `json:"status"`
	AssignedTo   *int64          `json:"assignedTo,omitempty"`
	Payment      PaymentResponse `json:"payment"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// BookingListResponse is the booking list DTO.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts the domain model into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		CleaningCode: b.CleaningCode,
		ServiceID:    b.ServiceID,
		Date:         b.Date.Format(domain.DateFormat),
		Time:         b.Time.String(),
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Address:      b.Address,
		Notes:        b.Notes,
		Status:       string(b.Status),
		AssignedTo:   b.AssignedTo,
		Payment: PaymentResponse{
			Method: string(b.Payment.Method),
			Amount: b.Payment.Amount,
			Status: string(b.Payment.Status),
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain models into a DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
