package repositories

import (
	"context"

	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/utils"
)

// AuditLogRepository defines audit log operations
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entities.AuditLog) error
	ListByUserID(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error)
}
