package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/interfaces/http/middleware"
	"rugcare.backend/internal/interfaces/http/response"
)

type JobPaymentService interface {
	GetJobPayment(ctx context.Context, userID, jobID string) (*entities.JobPaymentSummary, error)
}

// JobPaymentHandler handles staff job payment lookups
type JobPaymentHandler struct {
	jobPaymentUsecase JobPaymentService
}

// NewJobPaymentHandler creates a new job payment handler
func NewJobPaymentHandler(jobPaymentUsecase JobPaymentService) *JobPaymentHandler {
	return &JobPaymentHandler{jobPaymentUsecase: jobPaymentUsecase}
}

// GetJobPayment returns a job's payment state
// GET /api/v1/jobs/:id/payment
func (h *JobPaymentHandler) GetJobPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	summary, err := h.jobPaymentUsecase.GetJobPayment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
