package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/logger"
)

const defaultReconcileBatch = 50

// PendingPaymentLister lists payments still waiting for confirmation
type PendingPaymentLister interface {
	ListPending(ctx context.Context, createdAfter, createdBefore time.Time, limit int) ([]*entities.Payment, error)
}

// PaymentConfirmer runs the confirmation flow for one checkout session
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, sessionID string) (*entities.ConfirmPaymentResult, error)
}

// PendingPaymentReconcileJob re-checks pending payments whose browser redirect
// or webhook never reached us
type PendingPaymentReconcileJob struct {
	payments  PendingPaymentLister
	confirmer PaymentConfirmer
	interval  time.Duration
	minAge    time.Duration
	maxAge    time.Duration
	batch     int
	now       func() time.Time
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewPendingPaymentReconcileJob(payments PendingPaymentLister, confirmer PaymentConfirmer, interval, minAge, maxAge time.Duration) *PendingPaymentReconcileJob {
	return &PendingPaymentReconcileJob{
		payments:  payments,
		confirmer: confirmer,
		interval:  interval,
		minAge:    minAge,
		maxAge:    maxAge,
		batch:     defaultReconcileBatch,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
}

func (j *PendingPaymentReconcileJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting pending payment reconcile job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Pending payment reconcile job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Pending payment reconcile job stopped")
			return
		case <-ticker.C:
			j.reconcilePending(ctx)
		}
	}
}

func (j *PendingPaymentReconcileJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

// reconcilePending returns the number of sessions the provider reported paid
func (j *PendingPaymentReconcileJob) reconcilePending(ctx context.Context) int {
	now := j.now().UTC()
	pending, err := j.payments.ListPending(ctx, now.Add(-j.maxAge), now.Add(-j.minAge), j.batch)
	if err != nil {
		logger.Error(ctx, "Failed to list pending payments", zap.Error(err))
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	confirmed := 0
	for _, payment := range pending {
		if ctx.Err() != nil {
			return confirmed
		}
		result, err := j.confirmer.ConfirmPayment(ctx, payment.StripeSessionID)
		if err != nil {
			logger.Warn(ctx, "Reconcile confirmation failed",
				zap.String("session_id", payment.StripeSessionID),
				zap.Error(err),
			)
			continue
		}
		if result != nil && result.Success {
			confirmed++
		}
	}

	logger.Info(ctx, "Reconciled pending payments",
		zap.Int("checked", len(pending)),
		zap.Int("confirmed", confirmed),
	)
	return confirmed
}
