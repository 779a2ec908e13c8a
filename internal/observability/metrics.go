// Package observability registers the Prometheus collectors for the
// activities service.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route, and status code.",
	}, []string{"method", "route", "status"})

	signups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "directory",
		Name:      "signups_total",
		Help:      "Signup attempts, by outcome.",
	}, []string{"outcome"})

	unregistrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "directory",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(httpRequests, signups, unregistrations)
}

// RecordRequest counts one served HTTP request.
func RecordRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// RecordSignup counts one signup attempt with its outcome
// ("ok", "duplicate", or "unknown_activity").
func RecordSignup(outcome string) {
	signups.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts one unregister attempt with its outcome
// ("ok", "not_enrolled", or "unknown_activity").
func RecordUnregister(outcome string) {
	unregistrations.WithLabelValues(outcome).Inc()
}
