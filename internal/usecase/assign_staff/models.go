package assign_staff

import (
	"time"

	"github.com/sparkleclean/booking-service/pkg/types"
)

// Request assigns a staff member to a booking, or clears the assignment
// when StaffID is nil.
type Request struct {
	BookingID int64
	StaffID   *int64
}

// Response is the booking state after the assignment.
type Response struct {
	ID         int64
	Date       time.Time
	Time       types.TimeString
	Status     string
	AssignedTo *int64
}
