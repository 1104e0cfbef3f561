package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"rugcare.backend/internal/domain/entities"
	domainerrors "rugcare.backend/internal/domain/errors"
	"rugcare.backend/internal/domain/repositories"
	"rugcare.backend/pkg/logger"
	"rugcare.backend/pkg/metrics"
	"rugcare.backend/pkg/utils"
)

// Side effect names, used in logs and metrics
const (
	EffectPaymentUpdate  = "payment_update"
	EffectJobUpdate      = "job_update"
	EffectNotification   = "notification"
	EffectAuditLog       = "audit_log"
	EffectStaffEmail     = "staff_email"
	EffectInvoice        = "invoice"
	EffectInvoiceArchive = "invoice_archive"
	EffectClientEmail    = "client_email"
	EffectPaymentEvent   = "payment_event"
)

const defaultCallTimeout = 10 * time.Second

// PaymentProvider looks up checkout sessions
type PaymentProvider interface {
	RetrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
}

// ConfirmationNotifier sends the staff and client emails
type ConfirmationNotifier interface {
	SendStaffNotification(ctx context.Context, c *entities.ConfirmationContext) error
	SendClientConfirmation(ctx context.Context, c *entities.ClientConfirmation) error
}

// InvoiceGenerator renders the invoice attachment
type InvoiceGenerator interface {
	Generate(ctx context.Context, c *entities.ConfirmationContext) (*entities.InvoiceAttachment, error)
}

// InvoiceArchive stores a copy of a generated invoice
type InvoiceArchive interface {
	Archive(ctx context.Context, c *entities.ConfirmationContext, inv *entities.InvoiceAttachment) (string, error)
}

// EventPublisher announces confirmed payments to other services
type EventPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, event *entities.PaymentConfirmedEvent) error
}

// ConfirmationLocker serialises confirmations of one session across instances
type ConfirmationLocker interface {
	Acquire(ctx context.Context, sessionID string) (func(), error)
}

// PaymentConfirmationDeps wires the usecase. Archive, Events and Locker are optional.
type PaymentConfirmationDeps struct {
	Provider      PaymentProvider
	Payments      repositories.PaymentRepository
	Jobs          repositories.JobRepository
	Profiles      repositories.BusinessProfileRepository
	Estimates     repositories.EstimateRepository
	Notifications repositories.NotificationRepository
	AuditLogs     repositories.AuditLogRepository
	Notifier      ConfirmationNotifier
	Invoices      InvoiceGenerator
	Archive       InvoiceArchive
	Events        EventPublisher
	Locker        ConfirmationLocker
	CallTimeout   time.Duration
}

// PaymentConfirmationUsecase confirms checkout sessions and fans out the follow-up work
type PaymentConfirmationUsecase struct {
	deps        PaymentConfirmationDeps
	callTimeout time.Duration
	now         func() time.Time
}

// NewPaymentConfirmationUsecase creates a new payment confirmation usecase
func NewPaymentConfirmationUsecase(deps PaymentConfirmationDeps) *PaymentConfirmationUsecase {
	timeout := deps.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &PaymentConfirmationUsecase{
		deps:        deps,
		callTimeout: timeout,
		now:         time.Now,
	}
}

// ConfirmPayment checks the session with the provider and, when paid, records the
// payment and runs every side effect. Only invalid input and provider failures
// are returned as errors.
func (u *PaymentConfirmationUsecase) ConfirmPayment(ctx context.Context, sessionID string) (*entities.ConfirmPaymentResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		metrics.ObserveConfirmation(metrics.OutcomeInvalid)
		return nil, domainerrors.ValidationError("sessionId is required")
	}
	ctx = logger.WithSessionID(ctx, sessionID)

	session, err := u.retrieveSession(ctx, sessionID)
	if err != nil {
		metrics.ObserveConfirmation(metrics.OutcomeProviderError)
		logger.Error(ctx, "Failed to retrieve checkout session", zap.Error(err))
		return nil, domainerrors.ProviderError(err)
	}

	if !session.IsPaid() {
		metrics.ObserveConfirmation(metrics.OutcomeUnpaid)
		logger.Info(ctx, "Checkout session not paid", zap.String("payment_status", string(session.PaymentStatus)))
		return entities.NewUnpaidResult(session), nil
	}

	release := u.acquireLock(ctx, sessionID)
	defer release()

	paidAt := u.now().UTC()
	jobID := session.JobID()
	if jobID != "" {
		ctx = logger.WithJobID(ctx, jobID)
	}

	firstConfirmation := u.markPaymentCompleted(ctx, session, paidAt)

	// MarkPaid is conditional, so repeat confirmations repair a job write
	// that failed on an earlier attempt.
	if jobID != "" {
		u.markJobPaid(ctx, jobID, paidAt)
	} else {
		logger.Warn(ctx, "Paid session has no job id in metadata")
	}

	if !firstConfirmation {
		metrics.ObserveConfirmation(metrics.OutcomeDuplicate)
		logger.Info(ctx, "Payment already confirmed, skipping side effects")
		return entities.NewPaidResult(session.AmountTotal, u.loadJob(ctx, jobID)), nil
	}

	confirmation, job := u.buildConfirmationContext(ctx, session, jobID, paidAt)
	u.fanOut(ctx, confirmation, job)

	metrics.ObserveConfirmation(metrics.OutcomePaid)
	logger.Info(ctx, "Payment confirmed", zap.Int64("amount", session.AmountTotal))
	return entities.NewPaidResult(session.AmountTotal, job), nil
}

func (u *PaymentConfirmationUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, u.callTimeout)
}

func (u *PaymentConfirmationUsecase) retrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	session, err := u.deps.Provider.RetrieveSession(callCtx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("checkout session %s not found", sessionID)
	}
	return session, nil
}

// acquireLock never fails the confirmation; the conditional payment update
// still prevents a second fan-out when the lock is unavailable.
func (u *PaymentConfirmationUsecase) acquireLock(ctx context.Context, sessionID string) func() {
	noop := func() {}
	if u.deps.Locker == nil {
		return noop
	}

	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	release, err := u.deps.Locker.Acquire(callCtx, sessionID)
	if err != nil {
		logger.Warn(ctx, "Proceeding without confirmation lock", zap.Error(err))
		return noop
	}
	return release
}

// markPaymentCompleted reports whether this call should run the side effects.
// Write failures are logged and treated as a first confirmation.
func (u *PaymentConfirmationUsecase) markPaymentCompleted(ctx context.Context, session *entities.CheckoutSession, paidAt time.Time) bool {
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	transitioned, err := u.deps.Payments.MarkCompleted(callCtx, session.ID, session.PaymentIntentID, paidAt)
	switch {
	case err == nil:
		return transitioned
	case errors.Is(err, domainerrors.ErrNotFound):
		metrics.ObserveSideEffectFailure(EffectPaymentUpdate)
		logger.Warn(ctx, "No payment record for session", zap.String("effect", EffectPaymentUpdate))
	default:
		metrics.ObserveSideEffectFailure(EffectPaymentUpdate)
		logger.Error(ctx, "Failed to update payment record", zap.String("effect", EffectPaymentUpdate), zap.Error(err))
	}
	return true
}

func (u *PaymentConfirmationUsecase) markJobPaid(ctx context.Context, jobID string, paidAt time.Time) {
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	if err := u.deps.Jobs.MarkPaid(callCtx, jobID, paidAt); err != nil {
		metrics.ObserveSideEffectFailure(EffectJobUpdate)
		logger.Error(ctx, "Failed to update job payment status", zap.String("effect", EffectJobUpdate), zap.Error(err))
	}
}

func (u *PaymentConfirmationUsecase) loadJob(ctx context.Context, jobID string) *entities.Job {
	if jobID == "" {
		return nil
	}
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	job, err := u.deps.Jobs.GetByID(callCtx, jobID)
	if err != nil {
		logger.Warn(ctx, "Failed to load job", zap.Error(err))
		return nil
	}
	return job
}

func (u *PaymentConfirmationUsecase) loadProfile(ctx context.Context, userID string) *entities.BusinessProfile {
	if userID == "" {
		return nil
	}
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	profile, err := u.deps.Profiles.GetByUserID(callCtx, userID)
	if err != nil {
		logger.Warn(ctx, "Failed to load business profile", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return profile
}

func (u *PaymentConfirmationUsecase) loadEstimates(ctx context.Context, jobID string) []*entities.ApprovedEstimate {
	if jobID == "" {
		return nil
	}
	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	estimates, err := u.deps.Estimates.GetApprovedByJobID(callCtx, jobID)
	if err != nil {
		logger.Warn(ctx, "Failed to load approved estimates", zap.Error(err))
		return nil
	}
	return estimates
}

// buildConfirmationContext gathers notification data. Missing pieces become placeholders.
func (u *PaymentConfirmationUsecase) buildConfirmationContext(ctx context.Context, session *entities.CheckoutSession, jobID string, paidAt time.Time) (*entities.ConfirmationContext, *entities.Job) {
	job := u.loadJob(ctx, jobID)

	var profile *entities.BusinessProfile
	if job != nil {
		profile = u.loadProfile(ctx, job.UserID)
	}

	c := &entities.ConfirmationContext{
		SessionID:       session.ID,
		PaymentIntentID: orPlaceholder(session.PaymentIntentID, entities.PlaceholderNA),
		JobID:           jobID,
		JobNumber:       entities.PlaceholderUnknown,
		ClientName:      entities.PlaceholderUnknown,
		ClientEmail:     orPlaceholder(session.CustomerEmail, entities.PlaceholderNA),
		ClientPhone:     entities.PlaceholderNA,
		BusinessName:    entities.PlaceholderUnknown,
		BusinessEmail:   entities.PlaceholderNA,
		BusinessPhone:   entities.PlaceholderNA,
		BusinessAddress: entities.PlaceholderNA,
		AmountCents:     session.AmountTotal,
		Amount:          utils.FormatCents(session.AmountTotal),
		Currency:        orPlaceholder(strings.ToLower(session.Currency), "usd"),
		PaidAt:          paidAt,
		RugDetails:      buildRugDetails(u.loadEstimates(ctx, jobID)),
	}

	if job != nil {
		c.UserID = job.UserID
		c.JobNumber = orPlaceholder(job.JobNumber, entities.PlaceholderUnknown)
		c.ClientName = orPlaceholder(job.ClientName, entities.PlaceholderUnknown)
		if job.ClientEmail.Valid && strings.TrimSpace(job.ClientEmail.String) != "" {
			c.ClientEmail = strings.TrimSpace(job.ClientEmail.String)
		}
		if job.ClientPhone.Valid {
			c.ClientPhone = orPlaceholder(utils.FormatPhone(job.ClientPhone.String, ""), entities.PlaceholderNA)
		}
	}
	if profile != nil {
		c.BusinessName = orPlaceholder(profile.BusinessName, entities.PlaceholderUnknown)
		c.BusinessEmail = orPlaceholder(profile.BusinessEmail, entities.PlaceholderNA)
		c.BusinessPhone = orPlaceholder(utils.FormatPhone(profile.BusinessPhone, ""), entities.PlaceholderNA)
		c.BusinessAddress = orPlaceholder(profile.BusinessAddress, entities.PlaceholderNA)
	}
	return c, job
}

func buildRugDetails(estimates []*entities.ApprovedEstimate) []entities.RugDetail {
	details := make([]entities.RugDetail, 0, len(estimates))
	for _, e := range estimates {
		if e == nil {
			continue
		}
		d := entities.RugDetail{
			RugNumber:  entities.PlaceholderUnknown,
			RugType:    entities.PlaceholderUnknown,
			Dimensions: entities.PlaceholderNA,
			Services:   make([]string, 0, len(e.Services)),
			Total:      e.TotalAmount.StringFixed(2),
		}
		if insp := e.Inspection; insp != nil {
			d.RugNumber = orPlaceholder(insp.RugNumber, entities.PlaceholderUnknown)
			d.RugType = orPlaceholder(insp.RugType, entities.PlaceholderUnknown)
			if insp.Length.Valid && insp.Width.Valid {
				d.Dimensions = fmt.Sprintf("%s' x %s'", formatFeet(insp.Length.Float64), formatFeet(insp.Width.Float64))
			}
		}
		for _, s := range e.Services {
			if name := strings.TrimSpace(s.Name); name != "" {
				d.Services = append(d.Services, name)
			}
		}
		details = append(details, d)
	}
	return details
}

func formatFeet(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func orPlaceholder(v, placeholder string) string {
	if v = strings.TrimSpace(v); v == "" {
		return placeholder
	}
	return v
}
