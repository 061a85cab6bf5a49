// Package observability exposes Prometheus metrics for the HTTP surface
// and the save pipeline.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "runpr",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "runpr",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	profileSavesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "runpr",
		Subsystem: "profile",
		Name:      "saves_total",
		Help:      "Profile save attempts by outcome.",
	}, []string{"outcome"})

	profileEditsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "runpr",
		Subsystem: "profile",
		Name:      "edits_total",
		Help:      "Working-copy field edits across all users.",
	})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, profileSavesTotal, profileEditsTotal)
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordSave counts one save attempt. outcome is "ok" or "error".
func RecordSave(outcome string) {
	profileSavesTotal.WithLabelValues(outcome).Inc()
}

// RecordEdit counts one working-copy mutation.
func RecordEdit() {
	profileEditsTotal.Inc()
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments a handler with request count and latency metrics.
// route should be the registered pattern, not the raw URL, to keep label
// cardinality bounded.
func Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
