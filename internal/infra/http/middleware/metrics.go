package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_emails_sent_total",
			Help: "Total number of cold emails accepted by the provider",
		},
		[]string{"niche_tag"},
	)

	emailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_emails_failed_total",
			Help: "Total number of cold emails that failed to send",
		},
		[]string{"niche_tag"},
	)

	repliesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outreach_replies_received_total",
			Help: "Total number of inbound reply events received",
		},
	)

	dispatchBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_dispatch_batches_total",
			Help: "Total number of dispatch/retry batches by outcome",
		},
		[]string{"kind", "outcome"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEmailsSent(nicheTag string, count int) {
	emailsSent.WithLabelValues(nicheTag).Add(float64(count))
}

func RecordEmailsFailed(nicheTag string, count int) {
	emailsFailed.WithLabelValues(nicheTag).Add(float64(count))
}

func RecordReplyReceived() {
	repliesReceived.Inc()
}

func RecordDispatchBatch(kind, outcome string) {
	dispatchBatches.WithLabelValues(kind, outcome).Inc()
}
