package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcome labels.
const (
	OutcomeAccepted           = "accepted"
	OutcomeBadInput           = "bad_input"
	OutcomePaymentUnverified  = "payment_unverified"
	OutcomeLocationUnresolved = "location_unresolved"
	OutcomeDuplicate          = "duplicate"
	OutcomeInternalError      = "internal_error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	SubmissionsTotal *prometheus.CounterVec
	ExportFailures   prometheus.Counter
}

// New registers the collectors on reg. Pass a fresh registry in tests
// to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "traveling_message_submissions_total",
			Help: "Submission attempts by outcome.",
		}, []string{"outcome"}),
		ExportFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "traveling_message_export_failures_total",
			Help: "Failed attempts to write the static log artifact.",
		}),
	}
}
