package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nexus"

// Registry owns the service collectors. A fresh Registry per test keeps counters isolated.
type Registry struct {
	reg *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpLatency         *prometheus.HistogramVec
	moderationDecisions *prometheus.CounterVec
	usersRemoved        *prometheus.CounterVec
	checkoutsSettled    prometheus.Counter
}

// New builds a Registry with Go and process collectors attached.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		moderationDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_decisions_total",
			Help:      "Moderation decisions by entity kind and resulting status.",
		}, []string{"kind", "status"}),
		usersRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ecosystem_users_removed_total",
			Help:      "Ecosystem users removed by reason.",
		}, []string{"reason"}),
		checkoutsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_settled_total",
			Help:      "Simulated checkouts moved to succeeded.",
		}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpLatency,
		r.moderationDecisions,
		r.usersRemoved,
		r.checkoutsSettled,
	)
	return r
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer returns the underlying gatherer, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveRequest records one finished HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, latency time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// ModerationDecision counts a moderation outcome for a job or investor.
func (r *Registry) ModerationDecision(kind, status string) {
	if r == nil {
		return
	}
	r.moderationDecisions.WithLabelValues(kind, status).Inc()
}

// UsersRemoved counts removed ecosystem users.
func (r *Registry) UsersRemoved(reason string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.usersRemoved.WithLabelValues(reason).Add(float64(n))
}

// CheckoutsSettled counts settled checkouts.
func (r *Registry) CheckoutsSettled(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.checkoutsSettled.Add(float64(n))
}
