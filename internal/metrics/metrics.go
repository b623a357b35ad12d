// Package metrics declares the prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aichat_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aichat_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Sessions
	SessionValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aichat_session_validations_total",
			Help: "Session validations by result",
		},
		[]string{"result"}, // "valid", "missing", "expired", "error"
	)

	SessionsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aichat_sessions_issued_total",
			Help: "Sessions issued on login",
		},
	)

	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aichat_sessions_swept_total",
			Help: "Expired sessions removed by the sweep",
		},
	)

	// Predictions
	Predictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aichat_predictions_total",
			Help: "Prediction results by tool and source",
		},
		[]string{"tool", "source"}, // source: "delegated", "fallback", "failed"
	)

	DelegateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aichat_delegate_duration_seconds",
			Help:    "Duration of external script invocations",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"script"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aichat_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Chat
	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aichat_chat_replies_total",
			Help: "Chat replies by responder model",
		},
		[]string{"model"},
	)
)

func ObserveDelegate(script string, start time.Time) {
	DelegateDuration.WithLabelValues(script).Observe(time.Since(start).Seconds())
}
