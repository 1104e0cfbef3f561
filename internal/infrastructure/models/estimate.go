package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Inspection struct {
	ID        string   `gorm:"type:varchar(64);primaryKey"`
	JobID     string   `gorm:"type:varchar(64);not null;index"`
	RugNumber string   `gorm:"type:varchar(50)"`
	RugType   string   `gorm:"type:varchar(100)"`
	Length    *float64 `gorm:"type:numeric"`
	Width     *float64 `gorm:"type:numeric"`
	CreatedAt time.Time
}

func (Inspection) TableName() string {
	return "inspections"
}

type ApprovedEstimate struct {
	ID           string          `gorm:"type:varchar(64);primaryKey"`
	JobID        string          `gorm:"type:varchar(64);not null;index"`
	InspectionID *string         `gorm:"type:varchar(64)"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Services     string          `gorm:"type:jsonb;default:'[]'"`
	CreatedAt    time.Time

	Inspection *Inspection `gorm:"foreignKey:InspectionID"`
}

func (ApprovedEstimate) TableName() string {
	return "approved_estimates"
}
