// Package observability provides Prometheus metrics, OpenTelemetry tracing
// setup, and the HTTP surface that exposes them.
package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	messagesRoutedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roundtable_messages_routed_total",
			Help: "Total number of messages routed into history",
		},
		[]string{"type"},
	)

	messagesUndeliverableTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roundtable_messages_undeliverable_total",
			Help: "Total number of messages with an unknown receiver",
		},
		[]string{"type"},
	)

	roundDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roundtable_round_duration_seconds",
			Help:    "Scheduling round duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roundtable_dispatch_duration_seconds",
			Help:    "Per-agent dispatch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"agent"},
	)

	toolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roundtable_tool_calls_total",
			Help: "Total number of tool invocations",
		},
		[]string{"tool", "status"},
	)

	toolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roundtable_tool_call_duration_seconds",
			Help:    "Tool invocation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	handlerFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roundtable_handler_failures_total",
			Help: "Total number of handler failures converted to ERROR replies",
		},
		[]string{"agent"},
	)

	initOnce sync.Once
)

// InitMetrics registers the Prometheus metrics with the default registerer.
// Safe to call more than once.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			messagesRoutedTotal,
			messagesUndeliverableTotal,
			roundDuration,
			dispatchDuration,
			toolCallsTotal,
			toolCallDuration,
			handlerFailuresTotal,
		)
	})
}

// MetricsHandler returns an HTTP handler for Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordRouted counts a message delivered into history.
func RecordRouted(msgType string) {
	messagesRoutedTotal.WithLabelValues(msgType).Inc()
}

// RecordUndeliverable counts a message whose receiver was unknown.
func RecordUndeliverable(msgType string) {
	messagesUndeliverableTotal.WithLabelValues(msgType).Inc()
}

// RecordRound records one scheduling round.
func RecordRound(duration time.Duration) {
	roundDuration.Observe(duration.Seconds())
}

// RecordDispatch records one agent dispatch.
func RecordDispatch(agent string, duration time.Duration) {
	dispatchDuration.WithLabelValues(agent).Observe(duration.Seconds())
}

// RecordToolCall records a tool invocation outcome.
func RecordToolCall(tool, status string, duration time.Duration) {
	toolCallsTotal.WithLabelValues(tool, status).Inc()
	toolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordHandlerFailure counts a handler failure converted to an ERROR reply.
func RecordHandlerFailure(agent string) {
	handlerFailuresTotal.WithLabelValues(agent).Inc()
}
