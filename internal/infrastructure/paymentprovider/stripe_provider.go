package paymentprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"rugcare.backend/internal/domain/entities"
)

// ErrSessionNotFound is returned when the provider has no such checkout session
var ErrSessionNotFound = errors.New("checkout session not found")

// StripeConfig configures the Stripe adapter
type StripeConfig struct {
	SecretKey string
	// APIURL overrides api.stripe.com (stripe-mock, tests)
	APIURL     string
	HTTPClient *http.Client
}

// StripeProvider retrieves checkout sessions from Stripe
type StripeProvider struct {
	sessions session.Client
}

// NewStripeProvider creates a provider bound to its own backend, so the
// process-wide stripe.Key is never touched.
func NewStripeProvider(cfg StripeConfig) *StripeProvider {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		LeveledLogger:     newZapLeveledLogger(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	return &StripeProvider{
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
	}
}

// RetrieveSession looks up a checkout session by id
func (p *StripeProvider) RetrieveSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := p.sessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, err
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripe.CheckoutSession) *entities.CheckoutSession {
	out := &entities.CheckoutSession{
		ID:            s.ID,
		PaymentStatus: entities.SessionPaymentStatus(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}
