package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	staffSvc "github.com/sparkleclean/booking-service/internal/service/staff"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStaffID     = "invalid staff id"
	msgStaffNotFound      = "staff member not found"
	msgInvalidStaffData   = "invalid staff data"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/staff
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req staffSvc.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, staffSvc.ErrInvalidInput) {
			h.logger.Warn("POST /staff - invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)
			return
		}
		h.logger.Error("POST /staff - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff - created id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/staff/{staffId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req staffSvc.UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, staffSvc.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/%d - not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffSvc.ErrInvalidInput):
			h.logger.Warn("PUT /staff/%d - invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)

		default:
			h.logger.Error("PUT /staff/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/%d - updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/staff/{staffId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, staffSvc.ErrStaffNotFound) {
			h.logger.Warn("DELETE /staff/%d - not found", id)
			handlers.RespondNotFound(w, msgStaffNotFound)
			return
		}
		h.logger.Error("DELETE /staff/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /staff/%d - removed", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
