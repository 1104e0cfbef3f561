package repositories

import (
	"context"
	"time"

	"rugcare.backend/internal/domain/entities"
)

// JobRepository defines job data operations
type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Job, error)
	// MarkPaid sets payment_status=paid, status=in-progress and the approval time.
	MarkPaid(ctx context.Context, id string, approvedAt time.Time) error
}
