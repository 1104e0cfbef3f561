package models

import (
	"time"
)

type Job struct {
	ID               string  `gorm:"type:varchar(64);primaryKey"`
	JobNumber        string  `gorm:"type:varchar(50);not null;index"`
	UserID           string  `gorm:"type:varchar(64);not null;index"`
	ClientName       string  `gorm:"type:varchar(255);not null"`
	ClientEmail      *string `gorm:"type:varchar(255)"`
	ClientPhone      *string `gorm:"type:varchar(50)"`
	PaymentStatus    string  `gorm:"type:varchar(50);not null;default:'unpaid'"`
	Status           string  `gorm:"type:varchar(50);not null;default:'pending'"`
	ClientApprovedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Job) TableName() string {
	return "jobs"
}

type BusinessProfile struct {
	UserID          string `gorm:"type:varchar(64);primaryKey"`
	BusinessName    string `gorm:"type:varchar(255)"`
	BusinessEmail   string `gorm:"type:varchar(255)"`
	BusinessPhone   string `gorm:"type:varchar(50)"`
	BusinessAddress string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}
