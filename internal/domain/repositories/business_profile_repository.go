package repositories

import (
	"context"

	"rugcare.backend/internal/domain/entities"
)

// BusinessProfileRepository defines business profile lookups
type BusinessProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entities.BusinessProfile, error)
}
