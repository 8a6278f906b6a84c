package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default offered time labels when no time-slot configuration exists:
// hourly slots from 08:00 through 17:00.
const (
	DefaultWorkStartHour = 8
	DefaultWorkEndHour   = 17
)

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxMessageLength = 1000
)

// InactiveStatuses are the statuses that release a booking's slot.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusDone,
}
