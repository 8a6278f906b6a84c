package notifications

import (
	"time"

	"github.com/sparkleclean/booking-service/internal/domain"
)

// CreateNotificationRequest appends one entry to the log.
type CreateNotificationRequest struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Recipient     string `json:"recipient"`
	RecipientType string `json:"recipientType"` // customer | staff
}

// AlertResponse is one derived system alert.
type AlertResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// NotificationResponse is one persisted log entry.
type NotificationResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Recipient     string    `json:"recipient"`
	RecipientType string    `json:"recipientType"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FeedResponse is the notification feed: derived alerts first, then the
// persisted log, newest first.
type FeedResponse struct {
	Alerts        []AlertResponse        `json:"alerts"`
	Notifications []NotificationResponse `json:"notifications"`
}

func fromDomainAlert(a domain.SystemAlert) AlertResponse {
	return AlertResponse{
		Type:     a.Type,
		Title:    a.Title,
		Message:  a.Message,
		Priority: string(a.Priority),
		Count:    a.Count,
	}
}

func fromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		Recipient:     n.Recipient,
		RecipientType: n.RecipientType,
		Status:        n.Status,
		CreatedAt:     n.CreatedAt,
	}
}
