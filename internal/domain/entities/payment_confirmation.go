package entities

import "time"

// Placeholders rendered when notification data is missing
const (
	PlaceholderUnknown = "Unknown"
	PlaceholderNA      = "N/A"
)

// ConfirmPaymentInput is the inbound confirmation request
type ConfirmPaymentInput struct {
	SessionID string `json:"sessionId"`
}

// ConfirmPaymentResult is returned to the caller of a confirmation.
// JobNumber and ClientName are set (possibly empty) only for paid sessions.
type ConfirmPaymentResult struct {
	Success    bool    `json:"success"`
	Amount     int64   `json:"amount"`
	JobNumber  *string `json:"jobNumber,omitempty"`
	ClientName *string `json:"clientName,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// NewUnpaidResult reports a session the provider has not marked paid
func NewUnpaidResult(session *CheckoutSession) *ConfirmPaymentResult {
	return &ConfirmPaymentResult{
		Success: session.IsPaid(),
		Amount:  session.AmountTotal,
		Status:  string(session.PaymentStatus),
	}
}

// NewPaidResult reports a confirmed payment; job may be nil
func NewPaidResult(amount int64, job *Job) *ConfirmPaymentResult {
	jobNumber, clientName := "", ""
	if job != nil {
		jobNumber = job.JobNumber
		clientName = job.ClientName
	}
	return &ConfirmPaymentResult{
		Success:    true,
		Amount:     amount,
		JobNumber:  &jobNumber,
		ClientName: &clientName,
	}
}

// ConfirmationContext is the flat payload shared by every notification sender
type ConfirmationContext struct {
	SessionID       string      `json:"sessionId"`
	PaymentIntentID string      `json:"paymentIntentId"`
	JobID           string      `json:"jobId"`
	JobNumber       string      `json:"jobNumber"`
	UserID          string      `json:"userId"`
	ClientName      string      `json:"clientName"`
	ClientEmail     string      `json:"clientEmail"`
	ClientPhone     string      `json:"clientPhone"`
	BusinessName    string      `json:"businessName"`
	BusinessEmail   string      `json:"businessEmail"`
	BusinessPhone   string      `json:"businessPhone"`
	BusinessAddress string      `json:"businessAddress"`
	AmountCents     int64       `json:"amountCents"`
	Amount          string      `json:"amount"`
	Currency        string      `json:"currency"`
	PaidAt          time.Time   `json:"paidAt"`
	RugDetails      []RugDetail `json:"rugDetails"`
}

// InvoiceAttachment is a generated invoice document
type InvoiceAttachment struct {
	Filename      string `json:"filename"`
	ContentType   string `json:"contentType"`
	ContentBase64 string `json:"content"`
	Content       []byte `json:"-"`
}

// ClientConfirmation is the client email payload; Invoice is nil when generation failed
type ClientConfirmation struct {
	*ConfirmationContext
	Invoice *InvoiceAttachment `json:"invoice,omitempty"`
}

// PaymentConfirmedEvent is published once per confirmed session
type PaymentConfirmedEvent struct {
	EventType   string    `json:"eventType"`
	SessionID   string    `json:"sessionId"`
	JobID       string    `json:"jobId"`
	JobNumber   string    `json:"jobNumber"`
	UserID      string    `json:"userId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	PaidAt      time.Time `json:"paidAt"`
}
