package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents the local payment record status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is the local record of one checkout attempt, keyed by the provider session id.
type Payment struct {
	ID                    string        `json:"id"`
	JobID                 null.String   `json:"jobId,omitempty"`
	StripeSessionID       string        `json:"stripeSessionId"`
	StripePaymentIntentID null.String   `json:"stripePaymentIntentId,omitempty"`
	Amount                int64         `json:"amount"`
	Currency              string        `json:"currency"`
	Status                PaymentStatus `json:"status"`
	PaidAt                null.Time     `json:"paidAt,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// IsCompleted reports whether the payment has already been confirmed
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// SessionPaymentStatus is the provider's payment status for a checkout session
type SessionPaymentStatus string

const (
	SessionPaymentStatusPaid              SessionPaymentStatus = "paid"
	SessionPaymentStatusUnpaid            SessionPaymentStatus = "unpaid"
	SessionPaymentStatusNoPaymentRequired SessionPaymentStatus = "no_payment_required"
)

// CheckoutSession is the provider's view of a checkout attempt. Read-only here.
type CheckoutSession struct {
	ID              string               `json:"id"`
	PaymentStatus   SessionPaymentStatus `json:"paymentStatus"`
	AmountTotal     int64                `json:"amountTotal"`
	Currency        string               `json:"currency"`
	PaymentIntentID string               `json:"paymentIntentId"`
	CustomerEmail   string               `json:"customerEmail"`
	Metadata        map[string]string    `json:"metadata"`
}

// IsPaid reports whether the provider confirmed the charge
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == SessionPaymentStatusPaid
}

// JobID returns the job the checkout was created for, if any
func (s *CheckoutSession) JobID() string {
	if s.Metadata == nil {
		return ""
	}
	if id := s.Metadata["jobId"]; id != "" {
		return id
	}
	return s.Metadata["job_id"]
}

// Provider webhook event types that confirm a checkout
const (
	EventCheckoutSessionCompleted             = "checkout.session.completed"
	EventCheckoutSessionAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
)

// ProviderEvent is a verified webhook delivery from the payment provider
type ProviderEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

// ConfirmsPayment reports whether the event should trigger a confirmation
func (e *ProviderEvent) ConfirmsPayment() bool {
	if e.SessionID == "" {
		return false
	}
	return e.Type == EventCheckoutSessionCompleted || e.Type == EventCheckoutSessionAsyncPaymentSucceeded
}
