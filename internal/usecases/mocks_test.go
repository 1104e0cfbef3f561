package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/utils"
)

// Mock PaymentProvider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) RetrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CheckoutSession), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MarkCompleted(ctx context.Context, sessionID, paymentIntentID string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, sessionID, paymentIntentID, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) ListPending(ctx context.Context, createdAfter, createdBefore time.Time, limit int) ([]*entities.Payment, error) {
	args := m.Called(ctx, createdAfter, createdBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Payment), args.Error(1)
}

// Mock JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*entities.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Job), args.Error(1)
}

func (m *MockJobRepository) MarkPaid(ctx context.Context, id string, approvedAt time.Time) error {
	args := m.Called(ctx, id, approvedAt)
	return args.Error(0)
}

// Mock BusinessProfileRepository
type MockBusinessProfileRepository struct {
	mock.Mock
}

func (m *MockBusinessProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessProfile), args.Error(1)
}

// Mock EstimateRepository
type MockEstimateRepository struct {
	mock.Mock
}

func (m *MockEstimateRepository) GetApprovedByJobID(ctx context.Context, jobID string) ([]*entities.ApprovedEstimate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ApprovedEstimate), args.Error(1)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// Mock AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByUserID(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AuditLog), args.Get(1).(int64), args.Error(2)
}

// Mock ConfirmationNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendStaffNotification(ctx context.Context, c *entities.ConfirmationContext) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockNotifier) SendClientConfirmation(ctx context.Context, c *entities.ClientConfirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// Mock InvoiceGenerator
type MockInvoiceGenerator struct {
	mock.Mock
}

func (m *MockInvoiceGenerator) Generate(ctx context.Context, c *entities.ConfirmationContext) (*entities.InvoiceAttachment, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvoiceAttachment), args.Error(1)
}

// Mock InvoiceArchive
type MockInvoiceArchive struct {
	mock.Mock
}

func (m *MockInvoiceArchive) Archive(ctx context.Context, c *entities.ConfirmationContext, inv *entities.InvoiceAttachment) (string, error) {
	args := m.Called(ctx, c, inv)
	return args.String(0), args.Error(1)
}

// Mock EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPaymentConfirmed(ctx context.Context, event *entities.PaymentConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Mock ConfirmationLocker
type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}
