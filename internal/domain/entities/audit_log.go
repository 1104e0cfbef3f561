package entities

import "time"

// Audit actions written by this service
const (
	AuditActionPaymentConfirmed = "payment_confirmed"
	AuditEntityPayment          = "payment"
)

// AuditLog records a business-relevant action for later review
type AuditLog struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"userId"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entityType"`
	EntityID   string                 `json:"entityId"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// AuditLogView is an audit entry decorated for display
type AuditLogView struct {
	*AuditLog
	Label       string `json:"label"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	EntityLabel string `json:"entityLabel"`
}
