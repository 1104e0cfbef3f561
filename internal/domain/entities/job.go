package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// JobPaymentStatus tracks whether the client has paid for a job
type JobPaymentStatus string

const (
	JobPaymentStatusUnpaid JobPaymentStatus = "unpaid"
	JobPaymentStatusPaid   JobPaymentStatus = "paid"
)

// JobStatus is the workflow status of a cleaning job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
)

// Job is a rug cleaning/inspection job owned by a business user
type Job struct {
	ID               string           `json:"id"`
	JobNumber        string           `json:"jobNumber"`
	UserID           string           `json:"userId"`
	ClientName       string           `json:"clientName"`
	ClientEmail      null.String      `json:"clientEmail,omitempty"`
	ClientPhone      null.String      `json:"clientPhone,omitempty"`
	PaymentStatus    JobPaymentStatus `json:"paymentStatus"`
	Status           JobStatus        `json:"status"`
	ClientApprovedAt null.Time        `json:"clientApprovedAt,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// IsPaid reports whether the job has left the unpaid state
func (j *Job) IsPaid() bool {
	return j.PaymentStatus == JobPaymentStatusPaid
}

// JobPaymentSummary is the staff-facing view of a job's payment state
type JobPaymentSummary struct {
	JobID            string           `json:"jobId"`
	JobNumber        string           `json:"jobNumber"`
	ClientName       string           `json:"clientName"`
	PaymentStatus    JobPaymentStatus `json:"paymentStatus"`
	Status           JobStatus        `json:"status"`
	ClientApprovedAt null.Time        `json:"clientApprovedAt"`
}

// Summary projects the job onto its payment summary
func (j *Job) Summary() *JobPaymentSummary {
	return &JobPaymentSummary{
		JobID:            j.ID,
		JobNumber:        j.JobNumber,
		ClientName:       j.ClientName,
		PaymentStatus:    j.PaymentStatus,
		Status:           j.Status,
		ClientApprovedAt: j.ClientApprovedAt,
	}
}
