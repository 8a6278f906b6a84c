package domain

import "time"

// Worker is the login credential record for a staff member.
// PasswordHash is a bcrypt hash; the plaintext is never stored and the
// hash is never serialized in API responses.
type Worker struct {
	ID           int64
	StaffID      int64 // one-to-one reference to Staff
	Username     string
	PasswordHash string
	Name         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
