package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/infrastructure/models"
)

// JobRepository implements job data operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// GetByID gets a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	var m models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// MarkPaid moves an unpaid job to paid. A job that is already paid is left untouched.
func (r *JobRepository) MarkPaid(ctx context.Context, id string, approvedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND payment_status <> ?", id, entities.JobPaymentStatusPaid).
		Updates(map[string]interface{}{
			"payment_status":     entities.JobPaymentStatusPaid,
			"status":             entities.JobStatusInProgress,
			"client_approved_at": approvedAt,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *JobRepository) toEntity(m *models.Job) *entities.Job {
	return &entities.Job{
		ID:               m.ID,
		JobNumber:        m.JobNumber,
		UserID:           m.UserID,
		ClientName:       m.ClientName,
		ClientEmail:      null.StringFromPtr(m.ClientEmail),
		ClientPhone:      null.StringFromPtr(m.ClientPhone),
		PaymentStatus:    entities.JobPaymentStatus(m.PaymentStatus),
		Status:           entities.JobStatus(m.Status),
		ClientApprovedAt: null.TimeFromPtr(m.ClientApprovedAt),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
