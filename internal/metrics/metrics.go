// Package metrics registers the store's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders that reached their first persist.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_created_total",
		Help:      "Number of orders persisted in CREATED state.",
	})

	// PaymentAttempts counts capability invocations by method and outcome.
	PaymentAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "payment_attempts_total",
		Help:      "Payment attempts by method and result.",
	}, []string{"method", "result"})

	// HTTPRequestDuration observes handler latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// PaymentResultLabel maps a capability outcome to the counter label value.
func PaymentResultLabel(paid bool) string {
	if paid {
		return "success"
	}
	return "failure"
}
