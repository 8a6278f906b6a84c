package create_booking

import (
	"errors"
	"net/http"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	createBooking "github.com/sparkleclean/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDateOrTime     = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgBookingDisabled       = "online booking is currently disabled"
	msgDateBlocked           = "the selected date is not available for booking"
	msgServiceNotFound       = "service not found"
	msgServiceInactive       = "the selected service is not available"
	msgPaymentMethodDisabled = "the selected payment method is not accepted"
	msgSlotNotOffered        = "the selected time is not an offered slot"
	msgSlotNotAvailable      = "the selected time slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBookingDisabled):
			h.logger.Warn("POST /bookings - booking disabled")
			handlers.RespondForbidden(w, msgBookingDisabled)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - blocked date %s", req.Date)
			handlers.RespondUnprocessable(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - service id=%d not found", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - service id=%d inactive", req.ServiceID)
			handlers.RespondUnprocessable(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrPaymentMethodDisabled):
			h.logger.Warn("POST /bookings - payment method %s disabled", req.PaymentMethod)
			handlers.RespondUnprocessable(w, msgPaymentMethodDisabled)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - time %s not offered", req.Time)
			handlers.RespondUnprocessable(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - slot %s %s taken", req.Date, req.Time)
			handlers.RespondErrorCode(w, http.StatusConflict, msgSlotNotAvailable, handlers.CodeSlotUnavailable)

		default:
			h.logger.Error("POST /bookings - failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%d code=%s", result.ID, result.CleaningCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
