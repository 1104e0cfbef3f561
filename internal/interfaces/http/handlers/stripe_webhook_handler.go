package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/interfaces/http/response"
	"rugcare.backend/pkg/logger"
)

// maxWebhookBody matches the provider's documented payload ceiling
const maxWebhookBody = 65536

// StripeSignatureHeader carries the webhook signature
const StripeSignatureHeader = "Stripe-Signature"

type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (*entities.ProviderEvent, error)
}

// StripeWebhookHandler turns checkout webhooks into payment confirmations
type StripeWebhookHandler struct {
	verifier            WebhookVerifier
	confirmationUsecase PaymentConfirmationService
}

// NewStripeWebhookHandler creates a new webhook handler
func NewStripeWebhookHandler(verifier WebhookVerifier, confirmationUsecase PaymentConfirmationService) *StripeWebhookHandler {
	return &StripeWebhookHandler{verifier: verifier, confirmationUsecase: confirmationUsecase}
}

// HandleWebhook verifies and processes a provider event
// POST /api/v1/webhooks/stripe
func (h *StripeWebhookHandler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Failed to read webhook body"))
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader(StripeSignatureHeader))
	if err != nil {
		logger.Warn(ctx, "Rejected webhook", zap.Error(err))
		response.Error(c, domainerrors.BadRequest("Invalid webhook signature"))
		return
	}

	if !event.ConfirmsPayment() {
		logger.Debug(ctx, "Ignoring webhook event", zap.String("event_type", event.Type), zap.String("event_id", event.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	result, err := h.confirmationUsecase.ConfirmPayment(ctx, event.SessionID)
	if err != nil {
		// a 5xx makes the provider redeliver the event
		response.Failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "success": result.Success})
}
