package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	documentRepo "github.com/sparkleclean/booking-service/internal/infra/storage/document"
)

// Service manages the singleton document collections: settings,
// timeslots, content and design.
type Service struct {
	store  DocumentStore
	logger Logger
}

func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the raw document, or an empty object when none was saved yet.
func (s *Service) Get(ctx context.Context, name string) (json.RawMessage, error) {
	if !domain.KnownDocument(name) {
		return nil, ErrUnknownDocument
	}

	body, err := s.store.Get(ctx, name)
	if errors.Is(err, documentRepo.ErrDocumentNotFound) {
		return json.RawMessage(`{}`), nil
	}
	if err != nil {
		s.logger.Error("Get: failed to load document %s: %v", name, err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	return body, nil
}

// Merge applies a shallow top-level merge of patch onto the stored
// document and saves the result, mirroring how the admin screens update
// these collections field by field.
func (s *Service) Merge(ctx context.Context, name string, patch json.RawMessage) (json.RawMessage, error) {
	if !domain.KnownDocument(name) {
		return nil, ErrUnknownDocument
	}

	var patchFields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchFields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	current, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(current, &merged); err != nil {
		s.logger.Error("Merge: stored document %s is not an object: %v", name, err)
		merged = make(map[string]json.RawMessage)
	}
	for k, v := range patchFields {
		merged[k] = v
	}

	body, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("%w: Merge - marshal document: %v", ErrInternal, err)
	}

	if err := s.store.Save(ctx, name, body); err != nil {
		s.logger.Error("Merge: failed to save document %s: %v", name, err)
		return nil, fmt.Errorf("%w: Merge - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Merge: document %s updated (%d fields patched)", name, len(patchFields))
	return body, nil
}

// Replace overwrites the document as a whole (the settings screen saves
// the full form in one request).
func (s *Service) Replace(ctx context.Context, name string, body json.RawMessage) error {
	if !domain.KnownDocument(name) {
		return ErrUnknownDocument
	}

	var check map[string]json.RawMessage
	if err := json.Unmarshal(body, &check); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := s.store.Save(ctx, name, body); err != nil {
		s.logger.Error("Replace: failed to save document %s: %v", name, err)
		return fmt.Errorf("%w: Replace - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: document %s saved", name)
	return nil
}

// GetSettings returns the typed settings singleton, falling back to
// defaults when nothing has been saved.
func (s *Service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	body, err := s.Get(ctx, domain.DocumentSettings)
	if err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(body, settings); err != nil {
		s.logger.Warn("GetSettings: malformed settings document, using defaults: %v", err)
		return domain.DefaultSettings(), nil
	}

	return settings, nil
}

// GetTimeSlots returns the typed time-slot configuration, or nil when
// none is configured (callers fall back to the default labels).
func (s *Service) GetTimeSlots(ctx context.Context) (*domain.TimeSlotConfig, error) {
	body, err := s.Get(ctx, domain.DocumentTimeSlots)
	if err != nil {
		return nil, err
	}

	var cfg domain.TimeSlotConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		s.logger.Warn("GetTimeSlots: malformed timeslots document: %v", err)
		return nil, nil
	}
	if len(cfg.Slots) == 0 {
		return nil, nil
	}

	return &cfg, nil
}
