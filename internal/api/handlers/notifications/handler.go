package notifications

import (
	"errors"
	"net/http"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	notifSvc "github.com/sparkleclean/booking-service/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "title and message are required"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleFeed GET /api/v1/notifications
func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Feed(r.Context())
	if err != nil {
		h.logger.Error("GET /notifications - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAppend POST /api/v1/notifications
func (h *Handler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	var req notifSvc.CreateNotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Append(r.Context(), &req)
	if err != nil {
		if errors.Is(err, notifSvc.ErrInvalidInput) {
			h.logger.Warn("POST /notifications - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /notifications - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /notifications - appended id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
