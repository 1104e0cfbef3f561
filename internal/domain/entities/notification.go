package entities

import "time"

// NotificationType values used for in-app alerts
const (
	NotificationTypePaymentReceived = "payment_received"
)

// Notification is an in-app alert for a business user. Insert-only here.
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`
}
