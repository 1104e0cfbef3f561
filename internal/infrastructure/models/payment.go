package models

import (
	"time"
)

type Payment struct {
	ID                    string    `gorm:"type:uuid;primaryKey"`
	JobID                 *string   `gorm:"type:varchar(64);index"`
	StripeSessionID       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	StripePaymentIntentID *string   `gorm:"type:varchar(255)"`
	Amount                int64     `gorm:"not null;default:0"` // cents
	Currency              string    `gorm:"type:varchar(10);not null;default:'usd'"`
	Status                string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	PaidAt                *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Payment) TableName() string {
	return "payments"
}
