package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/api/middleware"
	"github.com/sparkleclean/booking-service/internal/service/bookings"
	"github.com/sparkleclean/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidFilter    = "invalid filter parameters"
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Admin and owner tokens see everything; worker tokens are pinned to
// their own assignments.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	query := r.URL.Query()
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if assigned := query.Get("assignedTo"); assigned != "" {
		id, err := strconv.ParseInt(assigned, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - invalid assignedTo=%s", assigned)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.AssignedTo = &id
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	if staffID, ok := middleware.StaffIDFromContext(r.Context()); ok {
		req.AssignedTo = &staffID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleOne GET /api/v1/bookings/{bookingId}
func (h *Handler) HandleOne(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/%d - not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if staffID, ok := middleware.StaffIDFromContext(r.Context()); ok {
		if result.AssignedTo == nil || *result.AssignedTo != staffID {
			h.logger.Warn("GET /bookings/%d - staff id=%d denied", id, staffID)
			handlers.RespondForbidden(w, "insufficient permissions")
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
