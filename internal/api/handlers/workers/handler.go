package workers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	workersSvc "github.com/sparkleclean/booking-service/internal/service/workers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidWorkerID    = "invalid worker id"
	msgWorkerNotFound     = "worker not found"
	msgStaffNotFound      = "staff member not found"
	msgUsernameTaken      = "username is already taken"
	msgInvalidCredential  = "invalid credential data"
)

type Handler struct {
	service WorkersService
	logger  Logger
}

func NewHandler(service WorkersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/workers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /workers - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/workers
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req workersSvc.IssueCredentialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.IssueCredential(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, workersSvc.ErrInvalidInput):
			h.logger.Warn("POST /workers - invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCredential)

		case errors.Is(err, workersSvc.ErrStaffNotFound):
			h.logger.Warn("POST /workers - staff id=%d not found", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, workersSvc.ErrUsernameTaken):
			h.logger.Warn("POST /workers - username %s taken", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUsernameTaken)

		default:
			h.logger.Error("POST /workers - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers - credential id=%d created", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleResetPassword PATCH /api/v1/workers/{workerId}/password
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["workerId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	var req workersSvc.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /workers/%d/password - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, workersSvc.ErrInvalidInput):
			h.logger.Warn("PATCH /workers/%d/password - invalid data: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidCredential)

		case errors.Is(err, workersSvc.ErrWorkerNotFound):
			h.logger.Warn("PATCH /workers/%d/password - not found", id)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("PATCH /workers/%d/password - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /workers/%d/password - password replaced", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
