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

type PaymentConfirmationService interface {
	ConfirmPayment(ctx context.Context, sessionID string) (*entities.ConfirmPaymentResult, error)
}

// PaymentConfirmationHandler handles the checkout return page callback
type PaymentConfirmationHandler struct {
	confirmationUsecase PaymentConfirmationService
}

// NewPaymentConfirmationHandler creates a new payment confirmation handler
func NewPaymentConfirmationHandler(confirmationUsecase PaymentConfirmationService) *PaymentConfirmationHandler {
	return &PaymentConfirmationHandler{confirmationUsecase: confirmationUsecase}
}

// VerifyPayment confirms a checkout session
// POST /api/v1/payments/verify
func (h *PaymentConfirmationHandler) VerifyPayment(c *gin.Context) {
	var input entities.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Failure(c, domainerrors.ValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.confirmationUsecase.ConfirmPayment(c.Request.Context(), input.SessionID)
	if err != nil {
		response.Failure(c, err)
		return
	}

	if !result.Success {
		// not paid yet; the session can still complete
		middleware.SkipIdempotencyCache(c)
	}
	response.Success(c, http.StatusOK, result)
}
