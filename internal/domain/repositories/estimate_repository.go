package repositories

import (
	"context"

	"rugcare.backend/internal/domain/entities"
)

// EstimateRepository defines approved estimate lookups
type EstimateRepository interface {
	GetApprovedByJobID(ctx context.Context, jobID string) ([]*entities.ApprovedEstimate, error)
}
