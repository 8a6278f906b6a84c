package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// Service composes the notification feed and appends log entries.
// Derived alerts and the persisted log are separate read paths joined
// only here, never in storage.
type Service struct {
	notificationRepo NotificationRepository
	bookingRepo      BookingRepository
	timer            TimeProvider
	logger           Logger
}

func NewService(
	notificationRepo NotificationRepository,
	bookingRepo BookingRepository,
	timer TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		bookingRepo:      bookingRepo,
		timer:            timer,
		logger:           logger,
	}
}

// Feed returns the derived system alerts followed by the persisted log,
// newest entries first.
func (s *Service) Feed(ctx context.Context) (*FeedResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Feed: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Feed - bookings: %v", ErrInternal, err)
	}

	persisted, err := s.notificationRepo.List(ctx)
	if err != nil {
		s.logger.Error("Feed: failed to list notifications: %v", err)
		return nil, fmt.Errorf("%w: Feed - notifications: %v", ErrInternal, err)
	}

	alerts := deriveAlerts(bookings, s.timer.Now())

	resp := &FeedResponse{
		Alerts:        make([]AlertResponse, 0, len(alerts)),
		Notifications: make([]NotificationResponse, 0, len(persisted)),
	}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, fromDomainAlert(a))
	}
	for _, n := range persisted {
		resp.Notifications = append(resp.Notifications, fromDomainNotification(n))
	}

	s.logger.Info("Feed: %d alerts, %d persisted notifications", len(alerts), len(persisted))
	return resp, nil
}

// Append stores one notification in the log and returns it.
func (s *Service) Append(ctx context.Context, req *CreateNotificationRequest) (*NotificationResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.Message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	notification := &domain.Notification{
		ID:            uuid.NewString(),
		Type:          req.Type,
		Title:         req.Title,
		Message:       req.Message,
		Recipient:     req.Recipient,
		RecipientType: req.RecipientType,
		Status:        domain.NotificationStatusSent,
	}

	stored, err := s.notificationRepo.Append(ctx, notification)
	if err != nil {
		s.logger.Error("Append: failed to store notification: %v", err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Append: notification id=%s stored", stored.ID)
	resp := fromDomainNotification(stored)
	return &resp, nil
}
