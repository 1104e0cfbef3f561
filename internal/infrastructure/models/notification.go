package models

import (
	"time"
)

type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:varchar(64);not null;index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text"`
	Metadata  string    `gorm:"type:jsonb;default:'{}'"`
	IsRead    bool      `gorm:"default:false"`
	CreatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}

type AuditLog struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	UserID     string `gorm:"type:varchar(64);not null;index"`
	Action     string `gorm:"type:varchar(100);not null;index"`
	EntityType string `gorm:"type:varchar(50);not null"`
	EntityID   string `gorm:"type:varchar(255)"`
	Details    string `gorm:"type:jsonb;default:'{}'"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
