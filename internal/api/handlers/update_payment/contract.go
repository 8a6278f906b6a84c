package update_payment

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	UpdatePayment(ctx context.Context, id int64, req *models.UpdatePaymentRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
