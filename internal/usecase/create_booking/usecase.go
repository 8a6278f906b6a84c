package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sparkleclean/booking-service/internal/domain"
	catalogRepo "github.com/sparkleclean/booking-service/internal/infra/storage/catalog"
)

// UseCase creates a booking from the public form. The slot check and the
// insert run in one serializable transaction so two concurrent requests
// for the same date and time cannot both succeed.
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      ServiceCatalog
	settings     SettingsProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	settings SettingsProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		settings:     settings,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the public booking flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, email=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Time, req.Email)

	// 1. Validate the form fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Company settings gate the whole flow.
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	if !settings.BookingEnabled {
		uc.logger.Warn("CreateBooking: online booking is disabled")
		return nil, ErrBookingDisabled
	}

	if settings.IsDateBlocked(req.Date.Format(domain.DateFormat)) {
		uc.logger.Warn("CreateBooking: date %s is blocked", req.Date.Format(domain.DateFormat))
		return nil, ErrDateBlocked
	}

	method, err := resolvePaymentMethod(req.PaymentMethod)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid payment method %q", req.PaymentMethod)
		return nil, err
	}
	if !settings.PaymentMethods.Enabled(method) {
		uc.logger.Warn("CreateBooking: payment method %s is not accepted", method)
		return nil, ErrPaymentMethodDisabled
	}

	// 3. Resolve the service and derive the default amount.
	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	amount := service.Price * (1 + settings.TaxRate)
	if req.Amount != nil {
		amount = *req.Amount
	}

	// 4. The requested time must be one of the offered slots.
	slotConfig, err := uc.settings.GetTimeSlots(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load time-slot config: %v", err)
		return nil, fmt.Errorf("%w: failed to load time slots: %v", ErrInternal, err)
	}
	if !isOfferedTime(slotConfig.OfferedTimes(), req.Time) {
		uc.logger.Warn("CreateBooking: time %s is not an offered slot", req.Time)
		return nil, ErrSlotNotOffered
	}

	var result *domain.Booking

	// 5. Slot check and insert inside one serializable transaction. The
	// date-filtered list takes row locks, so a concurrent create for the
	// same slot serializes behind this one and sees the conflict.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{Date: &req.Date})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		if hasSlotConflict(bookings, req.Time) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			CleaningCode: domain.NewCleaningCode(now),
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			Time:         req.Time,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
			Notes:        req.Notes,
			Status:       domain.StatusPending,
			Payment: domain.Payment{
				Method: method,
				Amount: amount,
				Status: domain.DefaultPaymentStatus(method),
			},
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d code=%s", result.ID, result.CleaningCode)

	return &Response{
		ID:            result.ID,
		CleaningCode:  result.CleaningCode,
		ServiceID:     result.ServiceID,
		Date:          result.Date,
		Time:          result.Time,
		Name:          result.Name,
		Email:         result.Email,
		Phone:         result.Phone,
		Address:       result.Address,
		Notes:         result.Notes,
		Status:        string(result.Status),
		PaymentMethod: string(result.Payment.Method),
		PaymentAmount: result.Payment.Amount,
		PaymentStatus: string(result.Payment.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
