package analytics

import (
	"context"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// Service computes the dashboard report. Every call is a fresh scan over
// the current data; nothing is cached or persisted.
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	serviceRepo ServiceRepository
	timer       TimeProvider
	logger      Logger
}

func NewService(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	timer TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		serviceRepo: serviceRepo,
		timer:       timer,
		logger:      logger,
	}
}

// Report aggregates revenue, service distribution, staff performance,
// retention and weekday demand over the full booking history.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Report: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Report - bookings: %v", ErrInternal, err)
	}

	staff, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("Report: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: Report - staff: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("Report: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: Report - services: %v", ErrInternal, err)
	}

	report := &Report{
		Overview:         buildOverview(bookings),
		MonthlyRevenue:   buildMonthlyRevenue(bookings, s.timer.Now()),
		ServiceStats:     buildServiceStats(bookings, services),
		StaffPerformance: buildStaffPerformance(bookings, staff),
		DemandTrends:     buildDemandTrends(bookings),
	}

	s.logger.Info("Report: aggregated %d bookings, %d staff, %d services",
		len(bookings), len(staff), len(services))
	return report, nil
}
