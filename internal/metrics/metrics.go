package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tokenforge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tokenforge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	itemsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tokenforge",
			Subsystem: "items",
			Name:      "current",
			Help:      "Number of items in the store.",
		},
	)

	walletConnections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tokenforge",
			Subsystem: "wallet",
			Name:      "connections_total",
			Help:      "Wallet connection attempts by result.",
		},
		[]string{"result"},
	)

	tokenSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tokenforge",
			Subsystem: "token",
			Name:      "submissions_total",
			Help:      "Token submissions by result.",
		},
		[]string{"result"},
	)

	tokenSubmissionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tokenforge",
			Subsystem: "token",
			Name:      "submission_duration_seconds",
			Help:      "Duration of calls to the token API.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		itemsTotal,
		walletConnections,
		tokenSubmissions,
		tokenSubmissionDuration,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// SetItems records the current size of the item store.
func SetItems(n int) {
	itemsTotal.Set(float64(n))
}

// RecordWalletConnection counts a connection attempt.
func RecordWalletConnection(result string) {
	walletConnections.WithLabelValues(result).Inc()
}

// RecordTokenSubmission counts a submission that reached the token API.
func RecordTokenSubmission(result string, duration time.Duration) {
	tokenSubmissions.WithLabelValues(result).Inc()
	tokenSubmissionDuration.Observe(duration.Seconds())
}
