package domain

import (
	"fmt"

	"github.com/sparkleclean/booking-service/pkg/types"
)

// Document collection names. Each is a single JSON document read and
// merge-written as a unit.
const (
	DocumentSettings  = "settings"
	DocumentTimeSlots = "timeslots"
	DocumentContent   = "content"
	DocumentDesign    = "design"
)

// KnownDocument reports whether name is a managed document collection.
func KnownDocument(name string) bool {
	switch name {
	case DocumentSettings, DocumentTimeSlots, DocumentContent, DocumentDesign:
		return true
	}
	return false
}

// PaymentMethodFlags enables or disables payment methods in the public
// booking flow.
type PaymentMethodFlags struct {
	CreditCard bool `json:"credit_card"`
	PayPal     bool `json:"paypal"`
	Cash       bool `json:"cash"`
}

// Enabled reports whether the given method is accepted.
func (f PaymentMethodFlags) Enabled(method PaymentMethod) bool {
	switch method {
	case PaymentMethodCreditCard:
		return f.CreditCard
	case PaymentMethodPayPal:
		return f.PayPal
	case PaymentMethodCash:
		return f.Cash
	}
	return false
}

// Settings is the company settings singleton.
type Settings struct {
	CompanyName    string             `json:"companyName"`
	CompanyEmail   string             `json:"companyEmail"`
	CompanyPhone   string             `json:"companyPhone"`
	CompanyAddress string             `json:"companyAddress"`
	TaxRate        float64            `json:"taxRate"` // fraction, e.g. 0.08
	PaymentMethods PaymentMethodFlags `json:"paymentMethods"`
	BlockedDates   []string           `json:"blockedDates"` // YYYY-MM-DD
	BookingEnabled bool               `json:"bookingEnabled"`
}

// IsDateBlocked reports whether date (YYYY-MM-DD) is blocked for booking.
func (s *Settings) IsDateBlocked(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// DefaultSettings is used when no settings document has been saved yet.
func DefaultSettings() *Settings {
	return &Settings{
		TaxRate:        0,
		PaymentMethods: PaymentMethodFlags{Cash: true},
		BookingEnabled: true,
	}
}

// TimeSlot is one configurable time option offered to customers.
// A slot can be disabled without being deleted.
type TimeSlot struct {
	ID              string           `json:"id"`
	Time            types.TimeString `json:"time"`
	DurationMinutes int              `json:"duration"`
	Enabled         bool             `json:"enabled"`
}

// TimeSlotSettings are the global slot-generation parameters.
type TimeSlotSettings struct {
	SlotDurationMinutes int              `json:"slotDuration"`
	BufferTimeMinutes   int              `json:"bufferTime"`
	WorkStartTime       types.TimeString `json:"workStartTime"`
	WorkEndTime         types.TimeString `json:"workEndTime"`
}

// TimeSlotConfig is the time-slot configuration singleton.
type TimeSlotConfig struct {
	Slots    []TimeSlot       `json:"slots"`
	Settings TimeSlotSettings `json:"settings"`
}

// OfferedTimes returns the enabled time labels in configured order, or
// the default hourly set when no slot is configured.
func (c *TimeSlotConfig) OfferedTimes() []types.TimeString {
	if c == nil || len(c.Slots) == 0 {
		return DefaultTimeLabels()
	}

	times := make([]types.TimeString, 0, len(c.Slots))
	for _, slot := range c.Slots {
		if slot.Enabled {
			times = append(times, slot.Time)
		}
	}
	return times
}

// DefaultTimeLabels is the fixed hourly 08:00-17:00 slot set.
func DefaultTimeLabels() []types.TimeString {
	labels := make([]types.TimeString, 0, DefaultWorkEndHour-DefaultWorkStartHour+1)
	for h := DefaultWorkStartHour; h <= DefaultWorkEndHour; h++ {
		labels = append(labels, types.TimeString(fmt.Sprintf("%02d:00", h)))
	}
	return labels
}
