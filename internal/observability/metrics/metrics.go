package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tokopos_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tokopos_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tokopos_logins_total",
		Help: "Count of login attempts by outcome",
	}, []string{"result"})

	receiptsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tokopos_receipts_rendered_total",
		Help: "Count of order receipt PDFs rendered",
	})
)

// ObserveHTTPRequest records one HTTP request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLogin records a login attempt. result is "success", "unauthorized"
// or "error" — never anything finer, so the metric cannot leak which
// credential factor failed.
func ObserveLogin(result string) {
	loginsTotal.WithLabelValues(result).Inc()
}

// ObserveReceiptRendered records one rendered receipt.
func ObserveReceiptRendered() {
	receiptsRendered.Inc()
}
