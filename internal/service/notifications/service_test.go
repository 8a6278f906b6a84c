package notifications

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
)

type fakeNotificationRepo struct {
	stored []*domain.Notification
}

func (f *fakeNotificationRepo) Append(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.stored = append(f.stored, n)
	return n, nil
}

func (f *fakeNotificationRepo) List(ctx context.Context) ([]*domain.Notification, error) {
	return f.stored, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestService_Feed(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		alertBooking(today.Truncate(24*time.Hour), domain.StatusPending, nil),
	}}
	notifications := &fakeNotificationRepo{stored: []*domain.Notification{
		{ID: "n1", Title: "Welcome", Message: "hi", Status: domain.NotificationStatusSent},
	}}

	svc := NewService(notifications, bookings, fixedTime{now: today}, testLogger{})

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)

	// One booking today and unassigned: agenda plus unassigned alerts,
	// alongside the persisted log.
	assert.Len(t, feed.Alerts, 2)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "n1", feed.Notifications[0].ID)
}

func TestService_Feed_AlertsNeverPersisted(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		alertBooking(today.Truncate(24*time.Hour), domain.StatusPending, nil),
	}}
	notifications := &fakeNotificationRepo{}

	svc := NewService(notifications, bookings, fixedTime{now: today}, testLogger{})

	_, err := svc.Feed(context.Background())
	require.NoError(t, err)
	_, err = svc.Feed(context.Background())
	require.NoError(t, err)

	assert.Empty(t, notifications.stored)
}

func TestService_Append(t *testing.T) {
	notifications := &fakeNotificationRepo{}
	svc := NewService(notifications, &fakeBookingRepo{}, fixedTime{now: today}, testLogger{})

	resp, err := svc.Append(context.Background(), &CreateNotificationRequest{
		Type:          "booking_update",
		Title:         "Booking confirmed",
		Message:       "Your booking for Oct 15 is confirmed.",
		Recipient:     "anna@example.com",
		RecipientType: "customer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.NotificationStatusSent, resp.Status)
	require.Len(t, notifications.stored, 1)
}

func TestService_Append_Validation(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, &fakeBookingRepo{}, fixedTime{now: today}, testLogger{})

	tests := []struct {
		name string
		req  *CreateNotificationRequest
	}{
		{name: "missing title", req: &CreateNotificationRequest{Message: "m"}},
		{name: "missing message", req: &CreateNotificationRequest{Title: "t"}},
		{name: "message too long", req: &CreateNotificationRequest{
			Title:   "t",
			Message: strings.Repeat("x", domain.MaxMessageLength+1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Append(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
