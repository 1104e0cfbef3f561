package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/infrastructure/models"
)

// BusinessProfileRepository implements business profile lookups
type BusinessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository creates a new business profile repository
func NewBusinessProfileRepository(db *gorm.DB) *BusinessProfileRepository {
	return &BusinessProfileRepository{db: db}
}

// GetByUserID gets the profile of a business user
func (r *BusinessProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.BusinessProfile, error) {
	var m models.BusinessProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.BusinessProfile{
		UserID:          m.UserID,
		BusinessName:    m.BusinessName,
		BusinessEmail:   m.BusinessEmail,
		BusinessPhone:   m.BusinessPhone,
		BusinessAddress: m.BusinessAddress,
	}, nil
}
