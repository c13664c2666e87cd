// Package metrics exposes session engine counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"portal/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Recorder owns a private registry so tests and multiple instances never collide.
type Recorder struct {
	registry *prometheus.Registry

	logins        *prometheus.CounterVec
	refreshes     *prometheus.CounterVec
	statusChecks  *prometheus.CounterVec
	guard         *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// NewRecorder registers every collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_token_refreshes_total",
			Help: "Access token refreshes by result.",
		}, []string{"result"}),
		statusChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_entity_status_checks_total",
			Help: "Entity status lookups by outcome.",
		}, []string{"outcome"}),
		guard: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_guard_decisions_total",
			Help: "Route guard decisions by kind and reason.",
		}, []string{"kind", "reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.logins, r.refreshes, r.statusChecks, r.guard,
		r.httpRequests, r.httpDurations,
	)

	return r
}

func (r *Recorder) ObserveLogin(outcome string) {
	r.logins.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveRefresh(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	r.refreshes.WithLabelValues(result).Inc()
}

func (r *Recorder) ObserveStatusCheck(outcome string) {
	r.statusChecks.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveGuardDecision(kind, reason string) {
	r.guard.WithLabelValues(kind, reason).Inc()
}

// ObserveHTTP records one served request. path is the route pattern, not the raw URL.
func (r *Recorder) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	r.httpRequests.WithLabelValues(method, path, code).Inc()
	r.httpDurations.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Module provides the Recorder and binds it as the session metrics sink.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.SessionMetrics { return r },
	),
)
