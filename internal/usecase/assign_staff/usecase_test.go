package assign_staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	bookingRepo "github.com/sparkleclean/booking-service/internal/infra/storage/booking"
	staffRepo "github.com/sparkleclean/booking-service/internal/infra/storage/staff"
	"github.com/sparkleclean/booking-service/pkg/ptr"
	"github.com/sparkleclean/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	byID    map[int64]*domain.Booking
	sameDay []*domain.Booking

	updatedID     *int64
	updatedStaff  *int64
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.sameDay, nil
}

func (f *fakeBookingRepo) UpdateAssignment(ctx context.Context, id int64, staffID *int64, status domain.BookingStatus) error {
	f.updatedID = &id
	f.updatedStaff = staffID
	f.updatedStatus = status
	return nil
}

type fakeStaffRepo struct {
	byID map[int64]*domain.Staff
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return m, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func activeStaff(id int64) *domain.Staff {
	return &domain.Staff{ID: id, Name: "Maria", Status: domain.StaffActive}
}

func pendingBooking(id int64, t string) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:   types.TimeString(t),
		Status: domain.StatusPending,
	}
}

func TestUseCase_Execute_AssignConfirms(t *testing.T) {
	bookings := &fakeBookingRepo{
		byID: map[int64]*domain.Booking{1: pendingBooking(1, "10:00")},
	}
	staff := &fakeStaffRepo{byID: map[int64]*domain.Staff{3: activeStaff(3)}}

	uc := NewUseCase(bookings, staff, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, StaffID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.AssignedTo)
	assert.Equal(t, int64(3), *resp.AssignedTo)

	assert.Equal(t, domain.StatusConfirmed, bookings.updatedStatus)
	require.NotNil(t, bookings.updatedStaff)
	assert.Equal(t, int64(3), *bookings.updatedStaff)
}

func TestUseCase_Execute_UnassignRevertsToPending(t *testing.T) {
	confirmed := pendingBooking(1, "10:00")
	confirmed.Status = domain.StatusConfirmed
	confirmed.AssignedTo = ptr.Ptr(int64(3))

	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: confirmed}}
	staff := &fakeStaffRepo{byID: map[int64]*domain.Staff{}}

	uc := NewUseCase(bookings, staff, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1, StaffID: nil})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.AssignedTo)
	assert.Equal(t, domain.StatusPending, bookings.updatedStatus)
	assert.Nil(t, bookings.updatedStaff)
}

func TestUseCase_Execute_StaffConflict(t *testing.T) {
	target := pendingBooking(1, "10:00")
	other := pendingBooking(2, "10:00")
	other.Status = domain.StatusConfirmed
	other.AssignedTo = ptr.Ptr(int64(3))

	bookings := &fakeBookingRepo{
		byID:    map[int64]*domain.Booking{1: target},
		sameDay: []*domain.Booking{target, other},
	}
	staff := &fakeStaffRepo{byID: map[int64]*domain.Staff{3: activeStaff(3)}}

	uc := NewUseCase(bookings, staff, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, StaffID: ptr.Ptr(int64(3))})
	assert.ErrorIs(t, err, ErrStaffConflict)

	// The booking must be left untouched on conflict.
	assert.Nil(t, bookings.updatedID)
}

func TestUseCase_Execute_ConflictIgnoresInactiveAndOtherSlots(t *testing.T) {
	target := pendingBooking(1, "10:00")

	cancelled := pendingBooking(2, "10:00")
	cancelled.Status = domain.StatusCancelled
	cancelled.AssignedTo = ptr.Ptr(int64(3))

	otherSlot := pendingBooking(4, "14:00")
	otherSlot.Status = domain.StatusConfirmed
	otherSlot.AssignedTo = ptr.Ptr(int64(3))

	bookings := &fakeBookingRepo{
		byID:    map[int64]*domain.Booking{1: target},
		sameDay: []*domain.Booking{target, cancelled, otherSlot},
	}
	staff := &fakeStaffRepo{byID: map[int64]*domain.Staff{3: activeStaff(3)}}

	uc := NewUseCase(bookings, staff, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1, StaffID: ptr.Ptr(int64(3))})
	assert.NoError(t, err)
}

func TestUseCase_Execute_Failures(t *testing.T) {
	inactive := activeStaff(5)
	inactive.Status = domain.StaffInactive

	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking(1, "10:00")}}
	staff := &fakeStaffRepo{byID: map[int64]*domain.Staff{
		3: activeStaff(3),
		5: inactive,
	}}

	uc := NewUseCase(bookings, staff, fakeTxManager{}, noopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing booking id", req: &Request{StaffID: ptr.Ptr(int64(3))}, wantErr: ErrInvalidInput},
		{name: "non-positive staff id", req: &Request{BookingID: 1, StaffID: ptr.Ptr(int64(0))}, wantErr: ErrInvalidInput},
		{name: "unknown staff", req: &Request{BookingID: 1, StaffID: ptr.Ptr(int64(99))}, wantErr: ErrStaffNotFound},
		{name: "inactive staff", req: &Request{BookingID: 1, StaffID: ptr.Ptr(int64(5))}, wantErr: ErrStaffInactive},
		{name: "unknown booking", req: &Request{BookingID: 42, StaffID: ptr.Ptr(int64(3))}, wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
