package locations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	locationsSvc "github.com/sparkleclean/booking-service/internal/service/locations"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidLocationID   = "invalid location id"
	msgLocationNotFound    = "location not found"
	msgInvalidLocationData = "invalid location data"
)

type Handler struct {
	service LocationsService
	logger  Logger
}

func NewHandler(service LocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/locations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/locations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req locationsSvc.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, locationsSvc.ErrInvalidInput) {
			h.logger.Warn("POST /locations - invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationData)
			return
		}
		h.logger.Error("POST /locations - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /locations - created id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/locations/{locationId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req locationsSvc.LocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /locations/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, locationsSvc.ErrLocationNotFound):
			h.logger.Warn("PUT /locations/%d - not found", id)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, locationsSvc.ErrInvalidInput):
			h.logger.Warn("PUT /locations/%d - invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidLocationData)

		default:
			h.logger.Error("PUT /locations/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /locations/%d - updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/locations/{locationId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, locationsSvc.ErrLocationNotFound) {
			h.logger.Warn("DELETE /locations/%d - not found", id)
			handlers.RespondNotFound(w, msgLocationNotFound)
			return
		}
		h.logger.Error("DELETE /locations/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /locations/%d - removed", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
