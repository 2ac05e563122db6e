package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters the API exposes on /metrics.
type Metrics struct {
	TransitionsTotal   *prometheus.CounterVec
	TokensIssuedTotal  prometheus.Counter
	ConfirmationErrors prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking_crm",
			Name:      "status_transitions_total",
			Help:      "Booking status transitions by source, target and result.",
		}, []string{"from", "to", "result"}),
		TokensIssuedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "booking_crm",
			Name:      "portal_tokens_issued_total",
			Help:      "Portal access tokens issued on confirmation.",
		}),
		ConfirmationErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "booking_crm",
			Name:      "confirmation_upsert_errors_total",
			Help:      "Confirmation record upserts that failed without aborting the transition.",
		}),
	}
}

func NewDefault() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return New(reg), reg
}
