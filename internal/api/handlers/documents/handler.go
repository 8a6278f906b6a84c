package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/sparkleclean/booking-service/internal/api/handlers"
	"github.com/sparkleclean/booking-service/internal/domain"
	documentsSvc "github.com/sparkleclean/booking-service/internal/service/documents"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownDocument    = "unknown document collection"
	msgInvalidDocument    = "document body must be a JSON object"
)

// maxDocumentBytes caps the accepted document payload.
const maxDocumentBytes = 1 << 20

// Handler serves the singleton JSON collections (settings, timeslots,
// content, design). Each collection has a fixed route; the document name
// is bound at registration time rather than taken from the URL so the
// admin routes stay explicit.
type Handler struct {
	service DocumentsService
	logger  Logger
}

func NewHandler(service DocumentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet returns a GET handler for the named collection.
func (h *Handler) HandleGet(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.service.Get(r.Context(), name)
		if err != nil {
			if errors.Is(err, documentsSvc.ErrUnknownDocument) {
				handlers.RespondNotFound(w, msgUnknownDocument)
				return
			}
			h.logger.Error("GET /%s - failed: %v", name, err)
			handlers.RespondInternalError(w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body) //nolint:errcheck
	}
}

// HandleMerge returns a PUT handler that patches the named collection.
func (h *Handler) HandleMerge(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
		if err != nil {
			h.logger.Warn("PUT /%s - failed to read body: %v", name, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		merged, err := h.service.Merge(r.Context(), name, patch)
		if err != nil {
			switch {
			case errors.Is(err, documentsSvc.ErrUnknownDocument):
				handlers.RespondNotFound(w, msgUnknownDocument)

			case errors.Is(err, documentsSvc.ErrInvalidDocument):
				h.logger.Warn("PUT /%s - invalid document: %v", name, err)
				handlers.RespondBadRequest(w, msgInvalidDocument)

			default:
				h.logger.Error("PUT /%s - failed: %v", name, err)
				handlers.RespondInternalError(w)
			}
			return
		}

		h.logger.Info("PUT /%s - document updated", name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(merged) //nolint:errcheck
	}
}

// HandlePublicSettings GET /api/v1/settings
// The public booking page only needs the fields that drive the form, so
// the internal settings (blocked dates, tax rate) stay behind auth.
func (h *Handler) HandlePublicSettings(w http.ResponseWriter, r *http.Request) {
	body, err := h.service.Get(r.Context(), domain.DocumentSettings)
	if err != nil {
		h.logger.Error("GET /settings - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	public, err := publicSettingsView(body)
	if err != nil {
		h.logger.Error("GET /settings - failed to project settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, public)
}
