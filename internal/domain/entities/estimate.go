package entities

import (
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ServiceLineItem is one priced service on an approved estimate
type ServiceLineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Total returns quantity * unit price, treating a missing quantity as one
func (s ServiceLineItem) Total() decimal.Decimal {
	qty := s.Quantity
	if qty <= 0 {
		qty = 1
	}
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// Inspection describes the rug an estimate was written for
type Inspection struct {
	ID        string       `json:"id"`
	RugNumber string       `json:"rugNumber"`
	RugType   string       `json:"rugType"`
	Length    null.Float64 `json:"length,omitempty"`
	Width     null.Float64 `json:"width,omitempty"`
}

// ApprovedEstimate is a client-approved estimate for one rug on a job
type ApprovedEstimate struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Services    []ServiceLineItem `json:"services"`
	Inspection  *Inspection       `json:"inspection,omitempty"`
}

// RugDetail is the flattened per-rug summary used in notifications and invoices
type RugDetail struct {
	RugNumber  string   `json:"rugNumber"`
	RugType    string   `json:"rugType"`
	Dimensions string   `json:"dimensions"`
	Services   []string `json:"services"`
	Total      string   `json:"total"`
}
