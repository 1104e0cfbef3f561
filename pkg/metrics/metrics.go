package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Confirmation outcomes
const (
	OutcomeInvalid       = "invalid"
	OutcomeProviderError = "provider_error"
	OutcomeUnpaid        = "unpaid"
	OutcomePaid          = "paid"
	OutcomeDuplicate     = "duplicate"
)

var (
	registry = prometheus.NewRegistry()

	confirmations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rugcare",
		Name:      "payment_confirmations_total",
		Help:      "Payment confirmation requests by outcome.",
	}, []string{"outcome"})

	sideEffectFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rugcare",
		Name:      "side_effect_failures_total",
		Help:      "Best-effort side effects that failed after a confirmed payment.",
	}, []string{"effect"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		confirmations,
		sideEffectFailures,
	)
}

// ObserveConfirmation counts one confirmation request with the given outcome.
func ObserveConfirmation(outcome string) {
	confirmations.WithLabelValues(outcome).Inc()
}

// ObserveSideEffectFailure counts one failed side effect.
func ObserveSideEffectFailure(effect string) {
	sideEffectFailures.WithLabelValues(effect).Inc()
}

// Handler exposes the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
