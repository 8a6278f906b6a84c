package domain

import "time"

// NotificationStatusSent is the only delivery status; sending is
// simulated, every appended record is immediately "sent".
const NotificationStatusSent = "sent"

// Notification is a persisted, append-only notification record.
type Notification struct {
	ID            string // uuid
	Type          string
	Title         string
	Message       string
	Recipient     string
	RecipientType string
	Status        string

	CreatedAt time.Time
}

// AlertPriority ranks derived system alerts.
type AlertPriority string

const (
	AlertPriorityHigh     AlertPriority = "high"
	AlertPriorityCritical AlertPriority = "critical"
)

// SystemAlert is an ephemeral alert derived from the booking collection
// on every read of the notification feed. Alerts are never persisted.
type SystemAlert struct {
	Type     string
	Title    string
	Message  string
	Priority AlertPriority
	Count    int
}
