package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	bookingRepo "github.com/sparkleclean/booking-service/internal/infra/storage/booking"
	"github.com/sparkleclean/booking-service/internal/service/bookings/models"
)

// Service manages the booking lifecycle after creation.
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	logger      Logger
}

func NewService(bookingRepo BookingRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings with optional date, status and staff filters.
// Without an explicit status filter only active bookings are returned
// unless IncludeInactive is set.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus moves a booking along its lifecycle. The transition is
// validated against the status table; reaching done also bumps the
// assigned staff member's completed-jobs counter.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// The counter bump is best effort; a failure here must not undo the
	// status change.
	if newStatus == domain.StatusDone && booking.AssignedTo != nil {
		if err := s.staffRepo.IncrementJobsCompleted(ctx, *booking.AssignedTo); err != nil {
			s.logger.Warn("UpdateStatus: failed to bump jobs_completed for staff id=%d: %v",
				*booking.AssignedTo, err)
		}
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: booking id=%d moved to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// UpdatePayment applies a partial payment update. Fields absent from the
// request keep their stored values.
func (s *Service) UpdatePayment(ctx context.Context, id int64, req *models.UpdatePaymentRequest) (*models.BookingResponse, error) {
	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("UpdatePayment: invalid payment data for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if patch.IsEmpty() {
		s.logger.Warn("UpdatePayment: empty patch for booking id=%d", id)
		return nil, fmt.Errorf("%w: no payment fields provided", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdatePayment(ctx, id, patch); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdatePayment: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdatePayment: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePayment - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdatePayment: reload failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePayment - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePayment: booking id=%d payment updated", id)
	return models.FromDomainBooking(booking), nil
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d removed", id)
	return nil
}

// DeleteAll removes every booking permanently.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.bookingRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("DeleteAll: repository error: %v", err)
		return fmt.Errorf("%w: DeleteAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAll: all bookings removed")
	return nil
}
