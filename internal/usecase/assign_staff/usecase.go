package assign_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	bookingRepo "github.com/sparkleclean/booking-service/internal/infra/storage/booking"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
)

// UseCase assigns or clears the staff member on a booking. The conflict
// check and the write run in one serializable transaction so the same
// cleaner cannot end up on two bookings at the same date and time.
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute runs the assignment flow. Assignment moves the booking to
// confirmed; clearing it reverts the booking to pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	// 1. The staff member must exist and be active before any locking.
	if req.StaffID != nil {
		member, err := uc.staffRepo.GetByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("AssignStaff: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("AssignStaff: staff lookup failed for id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: staff lookup: %v", ErrInternal, err)
		}
		if !member.IsActive() {
			uc.logger.Warn("AssignStaff: staff id=%d is inactive", *req.StaffID)
			return nil, ErrStaffInactive
		}
	}

	var result *domain.Booking

	// 2. Conflict check and write under one serializable transaction.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AssignStaff: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignStaff: booking lookup failed for id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: booking lookup: %w", ErrInternal, err)
		}

		newStatus := domain.StatusPending
		if req.StaffID != nil {
			// The date-filtered list takes row locks, holding the
			// staff schedule stable until commit.
			sameDay, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{Date: &booking.Date})
			if err != nil {
				uc.logger.Error("AssignStaff: failed to list bookings: %v", err)
				return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
			}

			if conflict := staffConflict(sameDay, *req.StaffID, booking); conflict != nil {
				uc.logger.Warn("AssignStaff: staff id=%d already booked at %s on %s (booking id=%d)",
					*req.StaffID, booking.Time, booking.Date.Format(domain.DateFormat), conflict.ID)
				return fmt.Errorf("%w: already booked at %s on %s",
					ErrStaffConflict, booking.Time, booking.Date.Format(domain.DateFormat))
			}
			newStatus = domain.StatusConfirmed
		}

		if err := uc.bookingRepo.UpdateAssignment(txCtx, req.BookingID, req.StaffID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("AssignStaff: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update assignment: %w", ErrInternal, err)
		}

		booking.AssignedTo = req.StaffID
		booking.Status = newStatus
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.StaffID != nil {
		uc.logger.Info("AssignStaff: booking id=%d assigned to staff id=%d", req.BookingID, *req.StaffID)
	} else {
		uc.logger.Info("AssignStaff: booking id=%d unassigned", req.BookingID)
	}

	return &Response{
		ID:         result.ID,
		Date:       result.Date,
		Time:       result.Time,
		Status:     string(result.Status),
		AssignedTo: result.AssignedTo,
	}, nil
}

// staffConflict returns the active booking that blocks the staff member
// at the target booking's slot, or nil. The target itself never counts.
func staffConflict(sameDay []*domain.Booking, staffID int64, target *domain.Booking) *domain.Booking {
	for _, b := range sameDay {
		if b.ID == target.ID || !b.IsActive() {
			continue
		}
		if b.AssignedTo == nil || *b.AssignedTo != staffID {
			continue
		}
		if b.Time == target.Time {
			return b
		}
	}
	return nil
}
