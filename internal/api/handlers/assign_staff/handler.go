package assign_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/domain"
	assignStaff "github.com/sparkleclean/booking-service/internal/usecase/assign_staff"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgStaffNotFound      = "staff member not found"
	msgStaffInactive      = "staff member is inactive"
)

// AssignStaffRequest HTTP request model. A null staffId clears the
// assignment.
type AssignStaffRequest struct {
	StaffID *int64 `json:"staffId"`
}

// AssignStaffResponse HTTP response model
type AssignStaffResponse struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	AssignedTo *int64 `json:"assignedTo,omitempty"`
}

type Handler struct {
	useCase AssignStaffUseCase
	logger  Logger
}

func NewHandler(useCase AssignStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/assign - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignStaff.Request{
		BookingID: id,
		StaffID:   req.StaffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignStaff.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d/assign - validation failed: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, assignStaff.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/assign - booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignStaff.ErrStaffNotFound):
			h.logger.Warn("PATCH /bookings/%d/assign - staff not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, assignStaff.ErrStaffInactive):
			h.logger.Warn("PATCH /bookings/%d/assign - staff inactive", id)
			handlers.RespondUnprocessable(w, msgStaffInactive)

		case errors.Is(err, assignStaff.ErrStaffConflict):
			h.logger.Warn("PATCH /bookings/%d/assign - staff conflict: %v", id, err)
			handlers.RespondError(w, http.StatusConflict, err.Error())

		default:
			h.logger.Error("PATCH /bookings/%d/assign - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/assign - status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, &AssignStaffResponse{
		ID:         result.ID,
		Date:       result.Date.Format(domain.DateFormat),
		Time:       result.Time.String(),
		Status:     result.Status,
		AssignedTo: result.AssignedTo,
	})
}
