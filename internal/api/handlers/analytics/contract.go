package analytics

import (
	"context"

	analyticsSvc "github.com/sparkleclean/booking-service/internal/service/analytics"
)

type AnalyticsService interface {
	Report(ctx context.Context) (*analyticsSvc.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
