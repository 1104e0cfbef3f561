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

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetBySessionID gets a payment by its checkout session id
func (r *PaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error) {
	var m models.Payment
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// MarkCompleted completes the payment unless it is already completed.
// Returns ErrNotFound when no payment exists for the session.
func (r *PaymentRepository) MarkCompleted(ctx context.Context, sessionID, paymentIntentID string, paidAt time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":     entities.PaymentStatusCompleted,
		"paid_at":    paidAt,
		"updated_at": time.Now(),
	}
	if paymentIntentID != "" {
		updates["stripe_payment_intent_id"] = paymentIntentID
	}

	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("stripe_session_id = ? AND status <> ?", sessionID, entities.PaymentStatusCompleted).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("stripe_session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, domainerrors.ErrNotFound
	}
	return false, nil
}

// ListPending lists pending payments created inside the window, oldest first
func (r *PaymentRepository) ListPending(ctx context.Context, createdAfter, createdBefore time.Time, limit int) ([]*entities.Payment, error) {
	var rows []models.Payment
	query := r.db.WithContext(ctx).
		Where("status = ? AND created_at >= ? AND created_at < ?", entities.PaymentStatusPending, createdAfter, createdBefore).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	payments := make([]*entities.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, r.toEntity(&rows[i]))
	}
	return payments, nil
}

func (r *PaymentRepository) toEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:                    m.ID,
		JobID:                 null.StringFromPtr(m.JobID),
		StripeSessionID:       m.StripeSessionID,
		StripePaymentIntentID: null.StringFromPtr(m.StripePaymentIntentID),
		Amount:                m.Amount,
		Currency:              m.Currency,
		Status:                entities.PaymentStatus(m.Status),
		PaidAt:                null.TimeFromPtr(m.PaidAt),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
