package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "insurance"

var (
	// Registry holds the application collectors served on /metrics.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	rateFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rate",
			Name:      "fetches_total",
			Help:      "Exchange rate lookups by source and outcome.",
		},
		[]string{"source", "outcome"},
	)

	contractCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contract",
			Name:      "calls_total",
			Help:      "Insurance contract calls by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	signatures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "issued_total",
			Help:      "Admin signatures issued by action.",
		},
		[]string{"action"},
	)

	syncUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "updates_total",
			Help:      "Mirror records updated by the reconciler.",
		},
		[]string{"kind", "status"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		rateFetches,
		contractCalls,
		signatures,
		syncUpdates,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordRateFetch(source, outcome string) {
	rateFetches.WithLabelValues(source, outcome).Inc()
}

func RecordContractCall(method string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	contractCalls.WithLabelValues(method, outcome).Inc()
}

func RecordSignature(action string) {
	signatures.WithLabelValues(action).Inc()
}

func RecordSyncUpdate(kind, status string) {
	syncUpdates.WithLabelValues(kind, status).Inc()
}
