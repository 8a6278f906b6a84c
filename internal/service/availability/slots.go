package availability

import (
	"sort"

	"github.com/sparkleclean/booking-service/internal/domain"
	"github.com/sparkleclean/booking-service/pkg/types"
)

// findStaffConflict returns the booking that blocks the given staff
// member at the given time label, or nil if the slot is free.
// Cancelled and done bookings never block; the excluded booking id lets
// an existing assignment be re-confirmed at its own slot.
func findStaffConflict(bookings []*domain.Booking, staffID int64, t types.TimeString, excludeID *int64) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.AssignedTo == nil || *b.AssignedTo != staffID {
			continue
		}
		if b.Time != t {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		return b
	}
	return nil
}

// findSlotConflict returns the active booking occupying the given time
// label regardless of staff, or nil. This backs the global uniqueness
// rule for public creation.
func findSlotConflict(bookings []*domain.Booking, t types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Time == t {
			return b
		}
	}
	return nil
}

// bookedTimeLabels returns the distinct time labels of active bookings,
// in clock order.
func bookedTimeLabels(bookings []*domain.Booking) []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	labels := make([]types.TimeString, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if _, ok := seen[b.Time]; ok {
			continue
		}
		seen[b.Time] = struct{}{}
		labels = append(labels, b.Time)
	}

	sort.Slice(labels, func(i, j int) bool {
		return labels[i].IsBefore(labels[j])
	})

	return labels
}
