package availability

import (
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/types"
)

// StaffSlotRequest asks whether a staff member is free at a slot.
type StaffSlotRequest struct {
	StaffID          int64
	Date             time.Time
	Time             types.TimeString
	ExcludeBookingID *int64 // ignore this booking when re-checking an existing assignment
}

// StaffSlotResult is the outcome of a staff slot check.
type StaffSlotResult struct {
	Available   bool
	Conflicting *domain.Booking // the blocking booking, when not available
}

// BookedTimesRequest asks which time labels are taken on a date.
type BookedTimesRequest struct {
	Date time.Time
}

// BookedTimesResult is the global per-date slot view used by the public
// booking form to gray out taken times.
type BookedTimesResult struct {
	Date         time.Time
	OfferedTimes []types.TimeString // enabled configured slots, or the default hourly set
	BookedTimes  []types.TimeString // time labels already taken by an active booking
}
