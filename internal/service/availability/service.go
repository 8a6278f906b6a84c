package availability

import (
	"context"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// Service answers slot-availability questions over the booking collection.
// Both checks are pure scans; nothing here mutates state.
type Service struct {
	bookingRepo BookingRepository
	timeSlots   TimeSlotProvider
	logger      Logger
}

func NewService(bookingRepo BookingRepository, timeSlots TimeSlotProvider, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		timeSlots:   timeSlots,
		logger:      logger,
	}
}

// CheckStaffSlot reports whether the staff member is free at the slot.
// Runs inside the assignment transaction when called from the assign
// use case, so the answer holds until commit.
func (s *Service) CheckStaffSlot(ctx context.Context, req *StaffSlotRequest) (*StaffSlotResult, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Date: &req.Date})
	if err != nil {
		s.logger.Error("CheckStaffSlot: failed to list bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: CheckStaffSlot - repository error: %v", ErrInternal, err)
	}

	conflict := findStaffConflict(bookings, req.StaffID, req.Time, req.ExcludeBookingID)

	return &StaffSlotResult{
		Available:   conflict == nil,
		Conflicting: conflict,
	}, nil
}

// BookedTimes returns the offered time labels for a date together with
// the labels already taken by an active booking, regardless of staff.
func (s *Service) BookedTimes(ctx context.Context, req *BookedTimesRequest) (*BookedTimesResult, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Date: &req.Date})
	if err != nil {
		s.logger.Error("BookedTimes: failed to list bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: BookedTimes - repository error: %v", ErrInternal, err)
	}

	cfg, err := s.timeSlots.GetTimeSlots(ctx)
	if err != nil {
		s.logger.Error("BookedTimes: failed to load time-slot config: %v", err)
		return nil, fmt.Errorf("%w: BookedTimes - timeslot config error: %v", ErrInternal, err)
	}

	return &BookedTimesResult{
		Date:         req.Date,
		OfferedTimes: cfg.OfferedTimes(),
		BookedTimes:  bookedTimeLabels(bookings),
	}, nil
}
