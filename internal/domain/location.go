package domain

import "time"

// Location is a service area the company covers.
type Location struct {
	ID      int64
	Name    string
	City    string
	Address string
	Phone   string
	Active  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
