package repositories

import (
	"context"

	"rugcare.backend/internal/domain/entities"
)

// NotificationRepository defines notification writes
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
}
