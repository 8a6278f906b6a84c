package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/ptr"
	"github.com/sparkleclean/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeTimeSlots struct {
	cfg *domain.TimeSlotConfig
	err error
}

func (f *fakeTimeSlots) GetTimeSlots(ctx context.Context) (*domain.TimeSlotConfig, error) {
	return f.cfg, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, t types.TimeString, status domain.BookingStatus, assignedTo *int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		Date:       date(2025, 10, 15),
		Time:       t,
		Status:     status,
		AssignedTo: assignedTo,
	}
}

func TestService_CheckStaffSlot(t *testing.T) {
	day := date(2025, 10, 15)

	tests := []struct {
		name          string
		bookings      []*domain.Booking
		req           *StaffSlotRequest
		wantAvailable bool
		wantConflict  *int64
	}{
		{
			name: "free slot",
			bookings: []*domain.Booking{
				booking(1, "10:00", domain.StatusConfirmed, ptr.Ptr(int64(2))),
			},
			req:           &StaffSlotRequest{StaffID: 1, Date: day, Time: "10:00"},
			wantAvailable: true,
		},
		{
			name: "same staff same time conflicts",
			bookings: []*domain.Booking{
				booking(1, "10:00", domain.StatusConfirmed, ptr.Ptr(int64(1))),
			},
			req:           &StaffSlotRequest{StaffID: 1, Date: day, Time: "10:00"},
			wantAvailable: false,
			wantConflict:  ptr.Ptr(int64(1)),
		},
		{
			name: "cancelled booking does not block",
			bookings: []*domain.Booking{
				booking(1, "10:00", domain.StatusCancelled, ptr.Ptr(int64(1))),
			},
			req:           &StaffSlotRequest{StaffID: 1, Date: day, Time: "10:00"},
			wantAvailable: true,
		},
		{
			name: "done booking does not block",
			bookings: []*domain.Booking{
				booking(1, "10:00", domain.StatusDone, ptr.Ptr(int64(1))),
			},
			req:           &StaffSlotRequest{StaffID: 1, Date: day, Time: "10:00"},
			wantAvailable: true,
		},
		{
			name: "excluded booking is ignored",
			bookings: []*domain.Booking{
				booking(5, "10:00", domain.StatusConfirmed, ptr.Ptr(int64(1))),
			},
			req: &StaffSlotRequest{
				StaffID: 1, Date: day, Time: "10:00",
				ExcludeBookingID: ptr.Ptr(int64(5)),
			},
			wantAvailable: true,
		},
		{
			name: "different time is free",
			bookings: []*domain.Booking{
				booking(1, "10:00", domain.StatusConfirmed, ptr.Ptr(int64(1))),
			},
			req:           &StaffSlotRequest{StaffID: 1, Date: day, Time: "11:00"},
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeBookingRepo{bookings: tt.bookings}, &fakeTimeSlots{}, noopLogger{})

			result, err := svc.CheckStaffSlot(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAvailable, result.Available)
			if tt.wantConflict != nil {
				require.NotNil(t, result.Conflicting)
				assert.Equal(t, *tt.wantConflict, result.Conflicting.ID)
			} else {
				assert.Nil(t, result.Conflicting)
			}
		})
	}
}

func TestService_CheckStaffSlot_Validation(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeTimeSlots{}, noopLogger{})

	tests := []struct {
		name string
		req  *StaffSlotRequest
	}{
		{name: "missing staff id", req: &StaffSlotRequest{Date: date(2025, 10, 15), Time: "10:00"}},
		{name: "missing date", req: &StaffSlotRequest{StaffID: 1, Time: "10:00"}},
		{name: "missing time", req: &StaffSlotRequest{StaffID: 1, Date: date(2025, 10, 15)}},
		{name: "malformed time", req: &StaffSlotRequest{StaffID: 1, Date: date(2025, 10, 15), Time: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CheckStaffSlot(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_BookedTimes(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, "14:00", domain.StatusPending, nil),
		booking(2, "09:00", domain.StatusConfirmed, ptr.Ptr(int64(1))),
		booking(3, "14:00", domain.StatusPending, nil),                 // duplicate label
		booking(4, "11:00", domain.StatusCancelled, ptr.Ptr(int64(2))), // inactive
	}
	cfg := &domain.TimeSlotConfig{Slots: []domain.TimeSlot{
		{ID: "a", Time: "09:00", Enabled: true},
		{ID: "b", Time: "14:00", Enabled: true},
		{ID: "c", Time: "16:00", Enabled: false},
	}}

	svc := NewService(&fakeBookingRepo{bookings: bookings}, &fakeTimeSlots{cfg: cfg}, noopLogger{})

	result, err := svc.BookedTimes(context.Background(), &BookedTimesRequest{Date: date(2025, 10, 15)})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, result.OfferedTimes)
	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, result.BookedTimes)
}

func TestService_BookedTimes_DefaultSlots(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeTimeSlots{cfg: nil}, noopLogger{})

	result, err := svc.BookedTimes(context.Background(), &BookedTimesRequest{Date: date(2025, 10, 15)})
	require.NoError(t, err)

	require.Len(t, result.OfferedTimes, 10)
	assert.Equal(t, types.TimeString("08:00"), result.OfferedTimes[0])
	assert.Empty(t, result.BookedTimes)
}
