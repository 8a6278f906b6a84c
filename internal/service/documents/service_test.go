package documents

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/booking-service/internal/domain"
	documentRepo "github.com/sparkleclean/booking-service/internal/infra/storage/document"
)

type fakeStore struct {
	docs map[string]json.RawMessage
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]json.RawMessage)}
}

func (f *fakeStore) Get(ctx context.Context, name string) (json.RawMessage, error) {
	body, ok := f.docs[name]
	if !ok {
		return nil, documentRepo.ErrDocumentNotFound
	}
	return body, nil
}

func (f *fakeStore) Save(ctx context.Context, name string, body json.RawMessage) error {
	f.docs[name] = body
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Get(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, noopLogger{})

	t.Run("missing document reads as empty object", func(t *testing.T) {
		body, err := svc.Get(context.Background(), domain.DocumentContent)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(body))
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "bookings")
		assert.ErrorIs(t, err, ErrUnknownDocument)
	})
}

func TestService_Merge(t *testing.T) {
	store := newFakeStore()
	store.docs[domain.DocumentContent] = json.RawMessage(`{"heroTitle":"Sparkle","aboutText":"We clean."}`)
	svc := NewService(store, noopLogger{})

	merged, err := svc.Merge(context.Background(), domain.DocumentContent,
		json.RawMessage(`{"heroTitle":"Sparkle & Shine"}`))
	require.NoError(t, err)

	// Top-level shallow merge: patched keys replaced, others preserved.
	assert.JSONEq(t, `{"heroTitle":"Sparkle & Shine","aboutText":"We clean."}`, string(merged))
	assert.JSONEq(t, string(merged), string(store.docs[domain.DocumentContent]))
}

func TestService_Merge_Invalid(t *testing.T) {
	svc := NewService(newFakeStore(), noopLogger{})

	_, err := svc.Merge(context.Background(), domain.DocumentContent, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, err = svc.Merge(context.Background(), "nope", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownDocument)
}

func TestService_Replace(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, noopLogger{})

	require.NoError(t, svc.Replace(context.Background(), domain.DocumentDesign,
		json.RawMessage(`{"primaryColor":"#336699"}`)))
	assert.JSONEq(t, `{"primaryColor":"#336699"}`, string(store.docs[domain.DocumentDesign]))

	assert.ErrorIs(t,
		svc.Replace(context.Background(), domain.DocumentDesign, json.RawMessage(`"just a string"`)),
		ErrInvalidDocument)
}

func TestService_GetSettings(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, noopLogger{})

	t.Run("defaults when unset", func(t *testing.T) {
		settings, err := svc.GetSettings(context.Background())
		require.NoError(t, err)
		assert.True(t, settings.BookingEnabled)
		assert.True(t, settings.PaymentMethods.Cash)
	})

	t.Run("stored settings win", func(t *testing.T) {
		store.docs[domain.DocumentSettings] = json.RawMessage(
			`{"taxRate":0.08,"bookingEnabled":false,"blockedDates":["2025-12-25"]}`)

		settings, err := svc.GetSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0.08, settings.TaxRate)
		assert.False(t, settings.BookingEnabled)
		assert.True(t, settings.IsDateBlocked("2025-12-25"))
	})
}

func TestService_GetTimeSlots(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, noopLogger{})

	t.Run("nil when unset", func(t *testing.T) {
		cfg, err := svc.GetTimeSlots(context.Background())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("configured slots", func(t *testing.T) {
		store.docs[domain.DocumentTimeSlots] = json.RawMessage(
			`{"slots":[{"id":"a","time":"09:00","duration":60,"enabled":true}]}`)

		cfg, err := svc.GetTimeSlots(context.Background())
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Len(t, cfg.Slots, 1)
		assert.True(t, cfg.Slots[0].Enabled)
	})
}
