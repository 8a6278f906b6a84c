package domain

import "time"

// Service is an offering in the public booking flow.
type Service struct {
	ID              int64
	Title           string
	Description     string
	Price           float64
	DurationMinutes int
	ImageURL        string
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
