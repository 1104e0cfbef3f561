package repositories

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/internal/infrastructure/models"
	"rugcare.backend/pkg/utils"
)

// AuditLogRepository implements audit log operations
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts an audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	if entry.ID == "" {
		entry.ID = utils.NewRecordID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	details, err := marshalJSONObject(entry.Details)
	if err != nil {
		return err
	}

	m := &models.AuditLog{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    details,
		CreatedAt:  entry.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUserID lists a user's audit entries, newest first
func (r *AuditLogRepository) ListByUserID(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AuditLog{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.AuditLog
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*entities.AuditLog, 0, len(ms))
	for _, m := range ms {
		entry := &entities.AuditLog{
			ID:         m.ID,
			UserID:     m.UserID,
			Action:     m.Action,
			EntityType: m.EntityType,
			EntityID:   m.EntityID,
			CreatedAt:  m.CreatedAt,
		}
		if m.Details != "" {
			// Malformed details are dropped rather than failing the whole page.
			_ = json.Unmarshal([]byte(m.Details), &entry.Details)
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
