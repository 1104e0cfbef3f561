package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"rugcare.backend/internal/interfaces/http/handlers"
)

func testRouteDeps(auth gin.HandlerFunc) routeDeps {
	return routeDeps{
		paymentConfirmationHandler: &handlers.PaymentConfirmationHandler{},
		stripeWebhookHandler:       &handlers.StripeWebhookHandler{},
		jobPaymentHandler:          &handlers.JobPaymentHandler{},
		auditLogHandler:            &handlers.AuditLogHandler{},
		authMiddleware:             auth,
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, testRouteDeps(func(c *gin.Context) { c.Next() }))

	routes := r.Routes()
	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/payments/verify"},
		{"OPTIONS", "/api/v1/payments/verify"},
		{"POST", "/api/v1/webhooks/stripe"},
		{"GET", "/api/v1/jobs/:id/payment"},
		{"GET", "/api/v1/audit-logs"},
	}

	if len(routes) != len(expects) {
		t.Fatalf("expected %d routes, got %d", len(expects), len(routes))
	}
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_PreflightWithoutOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r, []string{"*"})
	registerAPIV1Routes(r, testRouteDeps(func(c *gin.Context) { c.Next() }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/payments/verify", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin: %s", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-client-info") {
		t.Fatalf("unexpected allow-headers: %s", got)
	}
}

func TestRegisterAPIV1Routes_StaffRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, testRouteDeps(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}))

	for _, path := range []string{"/api/v1/jobs/job_1/payment", "/api/v1/audit-logs"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}

	// Smoke: unrelated helper route still works after route registration.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
