package create_booking

import (
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
	createBooking "github.com/sparkleclean/booking-service/internal/usecase/create_booking"
	"github.com/sparkleclean/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64    `json:"serviceId"`
	Date          string   `json:"date"` // "2025-10-15"
	Time          string   `json:"time"` // "10:00"
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Notes         *string  `json:"notes,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// PaymentResponse HTTP payment block
type PaymentResponse struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64           `json:"id"`
	CleaningCode string          `json:"cleaningCode"`
	ServiceID    int64           `json:"serviceId"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Notes        *string         `json:"notes,omitempty"`
	Status       string          `json:"status"`
	Payment      PaymentResponse `json:"payment"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// ToUseCaseRequest parses the date and time and builds the use case request.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          date,
		Time:          slot,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CleaningCode: resp.CleaningCode,
		ServiceID:    resp.ServiceID,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		Name:         resp.Name,
		Email:        resp.Email,
		Phone:        resp.Phone,
		Address:      resp.Address,
		Notes:        resp.Notes,
		Status:       resp.Status,
		Payment: PaymentResponse{
			Method: resp.PaymentMethod,
			Amount: resp.PaymentAmount,
			Status: resp.PaymentStatus,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
