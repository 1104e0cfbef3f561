package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/usecases"
)

func TestJobPaymentUsecase_GetJobPayment(t *testing.T) {
	jobRepo := new(MockJobRepository)
	uc := usecases.NewJobPaymentUsecase(jobRepo)

	approved := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	job := sampleJob()
	job.PaymentStatus = entities.JobPaymentStatusPaid
	job.Status = entities.JobStatusInProgress
	job.ClientApprovedAt = null.TimeFrom(approved)

	jobRepo.On("GetByID", context.Background(), "job_42").Return(job, nil).Once()

	summary, err := uc.GetJobPayment(context.Background(), "user_1", "job_42")
	require.NoError(t, err)
	assert.Equal(t, "job_42", summary.JobID)
	assert.Equal(t, "J-0042", summary.JobNumber)
	assert.Equal(t, entities.JobPaymentStatusPaid, summary.PaymentStatus)
	assert.Equal(t, entities.JobStatusInProgress, summary.Status)
	assert.True(t, summary.ClientApprovedAt.Valid)
	jobRepo.AssertExpectations(t)
}

func TestJobPaymentUsecase_GetJobPayment_Errors(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := usecases.NewJobPaymentUsecase(new(MockJobRepository))
		_, err := uc.GetJobPayment(context.Background(), "user_1", " ")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("GetByID", context.Background(), "job_x").Return(nil, domainerrors.ErrNotFound).Once()
		uc := usecases.NewJobPaymentUsecase(jobRepo)

		_, err := uc.GetJobPayment(context.Background(), "user_1", "job_x")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("other owner", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("GetByID", context.Background(), "job_42").Return(sampleJob(), nil).Once()
		uc := usecases.NewJobPaymentUsecase(jobRepo)

		_, err := uc.GetJobPayment(context.Background(), "user_2", "job_42")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		jobRepo.On("GetByID", context.Background(), "job_42").Return(nil, errors.New("db down")).Once()
		uc := usecases.NewJobPaymentUsecase(jobRepo)

		_, err := uc.GetJobPayment(context.Background(), "user_1", "job_42")
		var appErr *domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainerrors.CodeInternalError, appErr.Code)
	})
}
