package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/internal/interfaces/http/middleware"
	"rugcare.backend/pkg/utils"
)

type confirmationServiceStub struct {
	confirmFn func(ctx context.Context, sessionID string) (*entities.ConfirmPaymentResult, error)
}

func (s confirmationServiceStub) ConfirmPayment(ctx context.Context, sessionID string) (*entities.ConfirmPaymentResult, error) {
	return s.confirmFn(ctx, sessionID)
}

type webhookVerifierStub struct {
	verifyFn func(payload []byte, header string) (*entities.ProviderEvent, error)
}

func (s webhookVerifierStub) Verify(payload []byte, header string) (*entities.ProviderEvent, error) {
	return s.verifyFn(payload, header)
}

type jobPaymentServiceStub struct {
	getFn func(ctx context.Context, userID, jobID string) (*entities.JobPaymentSummary, error)
}

func (s jobPaymentServiceStub) GetJobPayment(ctx context.Context, userID, jobID string) (*entities.JobPaymentSummary, error) {
	return s.getFn(ctx, userID, jobID)
}

type auditLogServiceStub struct {
	listFn func(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLogView, utils.PaginationMeta, error)
}

func (s auditLogServiceStub) ListAuditLogs(ctx context.Context, userID string, pagination utils.PaginationParams) ([]*entities.AuditLogView, utils.PaginationMeta, error) {
	return s.listFn(ctx, userID, pagination)
}

func strPtr(s string) *string { return &s }

// withUser stands in for AuthMiddleware
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
