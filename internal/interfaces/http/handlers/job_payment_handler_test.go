package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
)

func newJobPaymentRouter(userID string, svc JobPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewJobPaymentHandler(svc)
	r.GET("/jobs/:id/payment", withUser(userID), h.GetJobPayment)
	return r
}

func TestJobPaymentHandler_GetJobPayment(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		r := newJobPaymentRouter("", jobPaymentServiceStub{
			getFn: func(context.Context, string, string) (*entities.JobPaymentSummary, error) {
				t.Fatal("should not be called")
				return nil, nil
			},
		})
		w := serve(r, httptest.NewRequest(http.MethodGet, "/jobs/job_42/payment", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r := newJobPaymentRouter("user_1", jobPaymentServiceStub{
			getFn: func(_ context.Context, userID, jobID string) (*entities.JobPaymentSummary, error) {
				assert.Equal(t, "user_1", userID)
				assert.Equal(t, "job_42", jobID)
				return &entities.JobPaymentSummary{
					JobID:         "job_42",
					JobNumber:     "J-0042",
					PaymentStatus: entities.JobPaymentStatusPaid,
					Status:        entities.JobStatusInProgress,
				}, nil
			},
		})
		w := serve(r, httptest.NewRequest(http.MethodGet, "/jobs/job_42/payment", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"paymentStatus":"paid"`)
		assert.Contains(t, w.Body.String(), `"status":"in-progress"`)
	})

	for name, tc := range map[string]struct {
		err  error
		code int
	}{
		"not found": {domainerrors.NotFound("job not found"), http.StatusNotFound},
		"forbidden": {domainerrors.Forbidden("job belongs to another business"), http.StatusForbidden},
	} {
		t.Run(name, func(t *testing.T) {
			r := newJobPaymentRouter("user_1", jobPaymentServiceStub{
				getFn: func(context.Context, string, string) (*entities.JobPaymentSummary, error) {
					return nil, tc.err
				},
			})
			w := serve(r, httptest.NewRequest(http.MethodGet, "/jobs/job_42/payment", nil))
			assert.Equal(t, tc.code, w.Code)
		})
	}
}
