package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/api/middleware"
	tasksSvc "github.com/sparkleclean/booking-service/internal/service/tasks"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTaskID      = "invalid task id"
	msgInvalidFilter      = "invalid filter parameters"
	msgTaskNotFound       = "task not found"
	msgInvalidTaskData    = "invalid task data"
	msgAccessDenied       = "insufficient permissions"
)

type Handler struct {
	service TasksService
	logger  Logger
}

func NewHandler(service TasksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/tasks
// Worker tokens are pinned to their own tasks.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := &tasksSvc.ListTasksRequest{}

	query := r.URL.Query()
	if raw := query.Get("bookingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.BookingID = &id
	}
	if raw := query.Get("assignedTo"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.AssignedTo = &id
	}

	if staffID, ok := middleware.StaffIDFromContext(r.Context()); ok {
		req.AssignedTo = &staffID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /tasks - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/tasks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksSvc.CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, tasksSvc.ErrInvalidInput) {
			h.logger.Warn("POST /tasks - invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTaskData)
			return
		}
		h.logger.Error("POST /tasks - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /tasks - created id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/tasks/{taskId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req tasksSvc.UpdateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tasks/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, tasksSvc.ErrTaskNotFound):
			h.logger.Warn("PUT /tasks/%d - not found", id)
			handlers.RespondNotFound(w, msgTaskNotFound)

		case errors.Is(err, tasksSvc.ErrInvalidInput):
			h.logger.Warn("PUT /tasks/%d - invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTaskData)

		default:
			h.logger.Error("PUT /tasks/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tasks/%d - updated", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/tasks/{taskId}/status
// Workers may only progress their own tasks; admin and owner tokens can
// progress any task.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req tasksSvc.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if staffID, ok := middleware.StaffIDFromContext(r.Context()); ok {
		req.RestrictToStaff = &staffID
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, tasksSvc.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/%d/status - not found", id)
			handlers.RespondNotFound(w, msgTaskNotFound)

		case errors.Is(err, tasksSvc.ErrAccessDenied):
			h.logger.Warn("PATCH /tasks/%d/status - access denied", id)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, tasksSvc.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/%d/status - invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTaskData)

		default:
			h.logger.Error("PATCH /tasks/%d/status - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/%d/status - moved to %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/tasks/{taskId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, tasksSvc.ErrTaskNotFound) {
			h.logger.Warn("DELETE /tasks/%d - not found", id)
			handlers.RespondNotFound(w, msgTaskNotFound)
			return
		}
		h.logger.Error("DELETE /tasks/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /tasks/%d - removed", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
