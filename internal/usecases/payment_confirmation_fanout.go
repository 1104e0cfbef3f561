package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/logger"
	"rugcare.backend/pkg/metrics"
)

var errNoJobOwner = errors.New("no business user for job")

// fanOut runs every side effect of a confirmed payment in order. Each one is
// isolated: an error or panic is logged and counted, and the next one still runs.
func (u *PaymentConfirmationUsecase) fanOut(ctx context.Context, c *entities.ConfirmationContext, job *entities.Job) {
	u.runSideEffect(ctx, EffectNotification, func(ctx context.Context) error {
		if job == nil || job.UserID == "" {
			return errNoJobOwner
		}
		return u.deps.Notifications.Create(ctx, &entities.Notification{
			UserID:  job.UserID,
			Type:    entities.NotificationTypePaymentReceived,
			Title:   "Payment Received",
			Message: fmt.Sprintf("%s paid $%s for job %s", c.ClientName, c.Amount, c.JobNumber),
			Metadata: map[string]interface{}{
				"jobId":     c.JobID,
				"jobNumber": c.JobNumber,
				"sessionId": c.SessionID,
				"amount":    c.AmountCents,
			},
		})
	})

	u.runSideEffect(ctx, EffectAuditLog, func(ctx context.Context) error {
		if job == nil || job.UserID == "" {
			return errNoJobOwner
		}
		return u.deps.AuditLogs.Create(ctx, &entities.AuditLog{
			UserID:     job.UserID,
			Action:     entities.AuditActionPaymentConfirmed,
			EntityType: entities.AuditEntityPayment,
			EntityID:   c.SessionID,
			Details: map[string]interface{}{
				"jobId":           c.JobID,
				"jobNumber":       c.JobNumber,
				"amount":          c.AmountCents,
				"paymentIntentId": c.PaymentIntentID,
			},
		})
	})

	u.runSideEffect(ctx, EffectStaffEmail, func(ctx context.Context) error {
		return u.deps.Notifier.SendStaffNotification(ctx, c)
	})

	// The client email goes out with or without the invoice.
	var invoice *entities.InvoiceAttachment
	u.runSideEffect(ctx, EffectInvoice, func(ctx context.Context) error {
		inv, err := u.deps.Invoices.Generate(ctx, c)
		if err != nil {
			return err
		}
		invoice = inv
		return nil
	})

	if u.deps.Archive != nil && invoice != nil {
		u.runSideEffect(ctx, EffectInvoiceArchive, func(ctx context.Context) error {
			location, err := u.deps.Archive.Archive(ctx, c, invoice)
			if err != nil {
				return err
			}
			logger.Debug(ctx, "Invoice archived", zap.String("location", location))
			return nil
		})
	}

	u.runSideEffect(ctx, EffectClientEmail, func(ctx context.Context) error {
		return u.deps.Notifier.SendClientConfirmation(ctx, &entities.ClientConfirmation{
			ConfirmationContext: c,
			Invoice:             invoice,
		})
	})

	if u.deps.Events != nil {
		u.runSideEffect(ctx, EffectPaymentEvent, func(ctx context.Context) error {
			return u.deps.Events.PublishPaymentConfirmed(ctx, &entities.PaymentConfirmedEvent{
				SessionID:   c.SessionID,
				JobID:       c.JobID,
				JobNumber:   c.JobNumber,
				UserID:      c.UserID,
				AmountCents: c.AmountCents,
				Currency:    c.Currency,
				PaidAt:      c.PaidAt,
			})
		})
	}
}

// runSideEffect executes fn under the per-call timeout and swallows its failure
func (u *PaymentConfirmationUsecase) runSideEffect(ctx context.Context, effect string, fn func(ctx context.Context) error) {
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn(callCtx)
	}()
	if err == nil {
		return
	}

	if errors.Is(err, errNoJobOwner) {
		logger.Warn(ctx, "Skipping side effect", zap.String("effect", effect), zap.Error(err))
		return
	}
	metrics.ObserveSideEffectFailure(effect)
	logger.Error(ctx, "Side effect failed", zap.String("effect", effect), zap.Error(err))
}
