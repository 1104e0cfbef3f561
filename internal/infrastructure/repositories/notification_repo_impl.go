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

// NotificationRepository implements notification writes
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts an in-app notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	if n.ID == "" {
		n.ID = utils.NewRecordID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	metadata, err := marshalJSONObject(n.Metadata)
	if err != nil {
		return err
	}

	m := &models.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func marshalJSONObject(v map[string]interface{}) (string, error) {
	if len(v) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
