package notifications

import (
	"context"

	notifSvc "github.com/sparkleclean/booking-service/internal/service/notifications"
)

type NotificationsService interface {
	Feed(ctx context.Context) (*notifSvc.FeedResponse, error)
	Append(ctx context.Context, req *notifSvc.CreateNotificationRequest) (*notifSvc.NotificationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
