package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/internal/service/availability"
	"github.com/sparkleclean/booking-service/pkg/types"
)

const (
	msgMissingStaffSlotParams = "staffId, date and time are required"
	msgMissingDate            = "date is required"
	msgInvalidParams          = "invalid query parameters"
)

// StaffSlotResponse HTTP response for the staff availability check.
type StaffSlotResponse struct {
	Available            bool   `json:"available"`
	ConflictingBookingID *int64 `json:"conflictingBookingId,omitempty"`
}

// BookedTimesResponse HTTP response for the per-date slot view.
type BookedTimesResponse struct {
	Date         string   `json:"date"`
	OfferedTimes []string `json:"offeredTimes"`
	BookedSlots  []string `json:"bookedSlots"`
	Count        int      `json:"count"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStaffSlot GET /api/v1/availability?staffId&date&time&excludeBookingId
func (h *Handler) HandleStaffSlot(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	staffRaw := query.Get("staffId")
	dateRaw := query.Get("date")
	timeRaw := query.Get("time")
	if staffRaw == "" || dateRaw == "" || timeRaw == "" {
		handlers.RespondBadRequest(w, msgMissingStaffSlotParams)
		return
	}

	staffID, err := strconv.ParseInt(staffRaw, 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateRaw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	slot, err := types.NewTimeStringFromString(timeRaw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	req := &availability.StaffSlotRequest{
		StaffID: staffID,
		Date:    date,
		Time:    slot,
	}
	if excludeRaw := query.Get("excludeBookingId"); excludeRaw != "" {
		excludeID, err := strconv.ParseInt(excludeRaw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	result, err := h.service.CheckStaffSlot(r.Context(), req)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("GET /availability - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /availability - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &StaffSlotResponse{Available: result.Available}
	if result.Conflicting != nil {
		resp.ConflictingBookingID = &result.Conflicting.ID
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleBookedTimes GET /api/v1/check-availability?date
func (h *Handler) HandleBookedTimes(w http.ResponseWriter, r *http.Request) {
	dateRaw := r.URL.Query().Get("date")
	if dateRaw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateRaw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.BookedTimes(r.Context(), &availability.BookedTimesRequest{Date: date})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /check-availability - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &BookedTimesResponse{
		Date:         result.Date.Format(domain.DateFormat),
		OfferedTimes: timeLabels(result.OfferedTimes),
		BookedSlots:  timeLabels(result.BookedTimes),
		Count:        len(result.BookedTimes),
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func timeLabels(ts []types.TimeString) []string {
	labels := make([]string, 0, len(ts))
	for _, t := range ts {
		labels = append(labels, t.String())
	}
	return labels
}
