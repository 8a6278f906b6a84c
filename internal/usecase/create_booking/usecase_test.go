package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	catalogRepo "github.com/sparkleclean/booking-service/internal/infra/storage/catalog"
	"github.com/sparkleclean/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = f.nextID
	if stored.ID == 0 {
		stored.ID = 1
	}
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCatalog struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeSettings struct {
	settings *domain.Settings
	slots    *domain.TimeSlotConfig
}

func (f *fakeSettings) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettings) GetTimeSlots(ctx context.Context) (*domain.TimeSlotConfig, error) {
	return f.slots, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func openSettings() *domain.Settings {
	return &domain.Settings{
		TaxRate:        0.1,
		PaymentMethods: domain.PaymentMethodFlags{Cash: true, CreditCard: true},
		BookingEnabled: true,
	}
}

func validRequest() *Request {
	return &Request{
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		Name:      "Anna Smith",
		Email:     "anna@example.com",
		Phone:     "+1 555 0100",
		Address:   "12 Main St",
	}
}

func newTestUseCase(repo *fakeBookingRepo, catalog *fakeCatalog, settings *fakeSettings) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, catalog, settings, tx, noopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc, tx
}

func TestUseCase_Execute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	catalog := &fakeCatalog{service: &domain.Service{ID: 1, Title: "Deep Clean", Price: 100, Active: true}}
	settings := &fakeSettings{settings: openSettings()}

	uc, tx := newTestUseCase(repo, catalog, settings)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.True(t, strings.HasPrefix(resp.CleaningCode, "CLN-"))
	assert.Equal(t, "cash", resp.PaymentMethod)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.InDelta(t, 110.0, resp.PaymentAmount, 0.001) // price plus tax
	assert.Equal(t, 1, tx.calls)

	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.AssignedTo)
}

func TestUseCase_Execute_NonCashIsPaidImmediately(t *testing.T) {
	repo := &fakeBookingRepo{}
	catalog := &fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: true}}
	settings := &fakeSettings{settings: openSettings()}

	uc, _ := newTestUseCase(repo, catalog, settings)

	req := validRequest()
	req.PaymentMethod = "credit_card"
	req.Amount = ptr.Ptr(150.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "credit_card", resp.PaymentMethod)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, 150.0, resp.PaymentAmount) // explicit amount wins over derivation
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	taken := &domain.Booking{
		ID:     9,
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:   "10:00",
		Status: domain.StatusConfirmed,
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{taken}}
	catalog := &fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: true}}
	settings := &fakeSettings{settings: openSettings()}

	uc, _ := newTestUseCase(repo, catalog, settings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := &domain.Booking{
		ID:     9,
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:   "10:00",
		Status: domain.StatusCancelled,
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	catalog := &fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: true}}
	settings := &fakeSettings{settings: openSettings()}

	uc, _ := newTestUseCase(repo, catalog, settings)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_Gates(t *testing.T) {
	activeService := &domain.Service{ID: 1, Price: 100, Active: true}

	tests := []struct {
		name     string
		settings *domain.Settings
		catalog  *fakeCatalog
		mutate   func(*Request)
		wantErr  error
	}{
		{
			name: "booking disabled",
			settings: &domain.Settings{
				PaymentMethods: domain.PaymentMethodFlags{Cash: true},
				BookingEnabled: false,
			},
			catalog: &fakeCatalog{service: activeService},
			wantErr: ErrBookingDisabled,
		},
		{
			name: "blocked date",
			settings: &domain.Settings{
				PaymentMethods: domain.PaymentMethodFlags{Cash: true},
				BlockedDates:   []string{"2025-10-15"},
				BookingEnabled: true,
			},
			catalog: &fakeCatalog{service: activeService},
			wantErr: ErrDateBlocked,
		},
		{
			name:     "payment method disabled",
			settings: openSettings(),
			catalog:  &fakeCatalog{service: activeService},
			mutate:   func(r *Request) { r.PaymentMethod = "paypal" },
			wantErr:  ErrPaymentMethodDisabled,
		},
		{
			name:     "service not found",
			settings: openSettings(),
			catalog:  &fakeCatalog{err: catalogRepo.ErrServiceNotFound},
			wantErr:  ErrServiceNotFound,
		},
		{
			name:     "service inactive",
			settings: openSettings(),
			catalog:  &fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: false}},
			wantErr:  ErrServiceInactive,
		},
		{
			name:     "time outside offered slots",
			settings: openSettings(),
			catalog:  &fakeCatalog{service: activeService},
			mutate:   func(r *Request) { r.Time = "03:00" },
			wantErr:  ErrSlotNotOffered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc, _ := newTestUseCase(repo, tt.catalog, &fakeSettings{settings: tt.settings})

			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing service", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.Time = "10am" }},
		{name: "missing name", mutate: func(r *Request) { r.Name = "  " }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "email without at sign", mutate: func(r *Request) { r.Email = "anna.example.com" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "missing address", mutate: func(r *Request) { r.Address = "" }},
		{name: "notes too long", mutate: func(r *Request) {
			long := strings.Repeat("x", domain.MaxNotesLength+1)
			r.Notes = &long
		}},
		{name: "negative amount", mutate: func(r *Request) { r.Amount = ptr.Ptr(-1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeBookingRepo{},
				&fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: true}},
				&fakeSettings{settings: openSettings()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ConfiguredSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	catalog := &fakeCatalog{service: &domain.Service{ID: 1, Price: 100, Active: true}}
	settings := &fakeSettings{
		settings: openSettings(),
		slots: &domain.TimeSlotConfig{Slots: []domain.TimeSlot{
			{ID: "a", Time: "07:30", Enabled: true},
			{ID: "b", Time: "10:00", Enabled: false},
		}},
	}

	uc, _ := newTestUseCase(repo, catalog, settings)

	// 10:00 exists but is disabled in the configured slot set.
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	req := validRequest()
	req.Time = "07:30"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
