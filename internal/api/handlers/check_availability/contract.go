package check_availability

import (
	"context"

	"github.com/sparkleclean/booking-service/internal/service/availability"
)

type AvailabilityService interface {
	CheckStaffSlot(ctx context.Context, req *availability.StaffSlotRequest) (*availability.StaffSlotResult, error)
	BookedTimes(ctx context.Context, req *availability.BookedTimesRequest) (*availability.BookedTimesResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
