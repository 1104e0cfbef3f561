package usecases

import (
	"context"
	"errors"
	"strings"

	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/domain/repositories"
)

// JobPaymentUsecase exposes a job's payment state to its owner
type JobPaymentUsecase struct {
	jobRepo repositories.JobRepository
}

// NewJobPaymentUsecase creates a new job payment usecase
func NewJobPaymentUsecase(jobRepo repositories.JobRepository) *JobPaymentUsecase {
	return &JobPaymentUsecase{jobRepo: jobRepo}
}

// GetJobPayment returns the payment summary of a job owned by userID
func (u *JobPaymentUsecase) GetJobPayment(ctx context.Context, userID, jobID string) (*entities.JobPaymentSummary, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, domainerrors.BadRequest("job id is required")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("job not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if job.UserID != userID {
		return nil, domainerrors.Forbidden("job belongs to another business")
	}
	return job.Summary(), nil
}
