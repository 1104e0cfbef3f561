package repositories

import (
	"context"
	"time"

	"rugcare.backend/internal/domain/entities"
)

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error)
	// MarkCompleted moves the payment for sessionID to completed. It reports
	// false when the payment was already completed.
	MarkCompleted(ctx context.Context, sessionID, paymentIntentID string, paidAt time.Time) (bool, error)
	// ListPending returns pending payments created in [createdAfter, createdBefore), oldest first.
	ListPending(ctx context.Context, createdAfter, createdBefore time.Time, limit int) ([]*entities.Payment, error)
}
