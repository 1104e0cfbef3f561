package repositories

import (
	"context"
	"encoding/json"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/internal/infrastructure/models"
	"rugcare.backend/pkg/logger"
)

// EstimateRepository implements approved estimate lookups
type EstimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// GetApprovedByJobID gets every approved estimate of a job with its inspection
func (r *EstimateRepository) GetApprovedByJobID(ctx context.Context, jobID string) ([]*entities.ApprovedEstimate, error) {
	var ms []models.ApprovedEstimate
	if err := r.db.WithContext(ctx).
		Preload("Inspection").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	estimates := make([]*entities.ApprovedEstimate, 0, len(ms))
	for i := range ms {
		estimates = append(estimates, r.toEntity(ctx, &ms[i]))
	}
	return estimates, nil
}

// toEntity never fails: an estimate with unreadable services keeps its
// total and inspection so one bad row does not hide the others.
func (r *EstimateRepository) toEntity(ctx context.Context, m *models.ApprovedEstimate) *entities.ApprovedEstimate {
	e := &entities.ApprovedEstimate{
		ID:          m.ID,
		JobID:       m.JobID,
		TotalAmount: m.TotalAmount,
	}
	if m.Services != "" {
		if err := json.Unmarshal([]byte(m.Services), &e.Services); err != nil {
			logger.Warn(ctx, "Skipping unreadable services of estimate",
				zap.String("estimate_id", m.ID),
				zap.Error(err),
			)
			e.Services = nil
		}
	}
	if m.Inspection != nil {
		e.Inspection = &entities.Inspection{
			ID:        m.Inspection.ID,
			RugNumber: m.Inspection.RugNumber,
			RugType:   m.Inspection.RugType,
			Length:    null.Float64FromPtr(m.Inspection.Length),
			Width:     null.Float64FromPtr(m.Inspection.Width),
		}
	}
	return e
}
