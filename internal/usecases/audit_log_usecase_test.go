package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/usecases"
	"rugcare.backend/pkg/utils"
)

func TestDescribeAuditAction(t *testing.T) {
	label, color, icon := usecases.DescribeAuditAction(entities.AuditActionPaymentConfirmed)
	assert.Equal(t, "Payment Confirmed", label)
	assert.Equal(t, "green", color)
	assert.Equal(t, "credit-card", icon)

	label, color, icon = usecases.DescribeAuditAction("rug_teleported")
	assert.Equal(t, "rug_teleported", label)
	assert.Equal(t, usecases.DefaultAuditColor, color)
	assert.Equal(t, usecases.DefaultAuditIcon, icon)
}

func TestDescribeAuditEntity(t *testing.T) {
	assert.Equal(t, "Payment", usecases.DescribeAuditEntity(entities.AuditEntityPayment))
	assert.Equal(t, "warehouse", usecases.DescribeAuditEntity("warehouse"))
}

func TestAuditLogUsecase_ListAuditLogs(t *testing.T) {
	repo := new(MockAuditLogRepository)
	uc := usecases.NewAuditLogUsecase(repo)
	pagination := utils.GetPaginationParams(2, 1)

	repo.On("ListByUserID", context.Background(), "user_1", pagination).Return([]*entities.AuditLog{
		{ID: "log_2", UserID: "user_1", Action: "mystery", EntityType: "job", EntityID: "job_42"},
	}, int64(3), nil).Once()

	views, meta, err := uc.ListAuditLogs(context.Background(), "user_1", pagination)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "log_2", views[0].ID)
	assert.Equal(t, "mystery", views[0].Label)
	assert.Equal(t, "gray", views[0].Color)
	assert.Equal(t, "activity", views[0].Icon)
	assert.Equal(t, "Job", views[0].EntityLabel)
	assert.Equal(t, utils.PaginationMeta{Page: 2, Limit: 1, TotalCount: 3, TotalPages: 3}, meta)
	repo.AssertExpectations(t)
}

func TestAuditLogUsecase_ListAuditLogs_Errors(t *testing.T) {
	uc := usecases.NewAuditLogUsecase(new(MockAuditLogRepository))
	_, _, err := uc.ListAuditLogs(context.Background(), "", utils.GetPaginationParams(1, 10))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	repo := new(MockAuditLogRepository)
	pagination := utils.GetPaginationParams(1, 10)
	repo.On("ListByUserID", context.Background(), "user_1", pagination).Return(nil, int64(0), errors.New("db down")).Once()
	uc = usecases.NewAuditLogUsecase(repo)

	_, _, err = uc.ListAuditLogs(context.Background(), "user_1", pagination)
	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.CodeInternalError, appErr.Code)
}
