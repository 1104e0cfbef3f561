package main

import (
	"github.com/gin-gonic/gin"
	"rugcare.backend/internal/interfaces/http/handlers"
	"rugcare.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	paymentConfirmationHandler *handlers.PaymentConfirmationHandler
	stripeWebhookHandler       *handlers.StripeWebhookHandler
	jobPaymentHandler          *handlers.JobPaymentHandler
	auditLogHandler            *handlers.AuditLogHandler
	authMiddleware             gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Payment confirmation (public, called from the checkout success page)
		payments := v1.Group("/payments")
		{
			payments.POST("/verify", middleware.IdempotencyMiddleware(), d.paymentConfirmationHandler.VerifyPayment)
			payments.OPTIONS("/verify", middleware.Preflight)
		}

		// Provider webhooks (public, signature verified)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/stripe", d.stripeWebhookHandler.HandleWebhook)
		}

		// Staff routes (protected)
		jobs := v1.Group("/jobs")
		jobs.Use(d.authMiddleware)
		{
			jobs.GET("/:id/payment", d.jobPaymentHandler.GetJobPayment)
		}

		auditLogs := v1.Group("/audit-logs")
		auditLogs.Use(d.authMiddleware)
		{
			auditLogs.GET("", d.auditLogHandler.ListAuditLogs)
		}
	}
}
