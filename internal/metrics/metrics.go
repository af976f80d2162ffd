// Package metrics defines the Prometheus collectors exported by the server.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "beeffund"

// Oracle call outcomes.
const (
	OutcomePrioritized   = "prioritized"
	OutcomeError         = "error"
	OutcomeTimeout       = "timeout"
	OutcomeInvalidShape  = "invalid_shape"
	OutcomeNotConfigured = "not_configured"
	OutcomeEmpty         = "empty"
)

// Metrics holds every collector the service records into.
type Metrics struct {
	rpcRequests        *prometheus.CounterVec
	rpcDuration        *prometheus.HistogramVec
	mutations          *prometheus.CounterVec
	cacheInvalidations *prometheus.CounterVec
	oracleCalls        *prometheus.CounterVec
	oracleDuration     prometheus.Histogram
	integrityWarnings  prometheus.Counter
	auditDropped       prometheus.Counter
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rpcRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Successful record mutations by collection and operation.",
		}, []string{"collection", "op"}),
		cacheInvalidations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Read cache invalidations by collection.",
		}, []string{"collection"}),
		oracleCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oracle_calls_total",
			Help:      "Fraud prioritization attempts by outcome.",
		}, []string{"outcome"}),
		oracleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "oracle_duration_seconds",
			Help:      "Latency of fraud prioritization oracle calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		}),
		integrityWarnings: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_warnings_total",
			Help:      "Payments skipped during aggregation because their member is missing.",
		}),
		auditDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_dropped_total",
			Help:      "Audit events dropped because the queue was full.",
		}),
	}
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// Mutation records a successful create, update or delete.
func (m *Metrics) Mutation(collection, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(collection, op).Inc()
}

// CacheInvalidated records a dropped cache snapshot.
func (m *Metrics) CacheInvalidated(collection string) {
	if m == nil {
		return
	}
	m.cacheInvalidations.WithLabelValues(collection).Inc()
}

// OracleCall records a prioritization attempt.
func (m *Metrics) OracleCall(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.oracleCalls.WithLabelValues(outcome).Inc()
	if d > 0 {
		m.oracleDuration.Observe(d.Seconds())
	}
}

// IntegrityWarnings records skipped orphan payments.
func (m *Metrics) IntegrityWarnings(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.integrityWarnings.Add(float64(n))
}

// AuditDropped records an audit event lost to a full queue.
func (m *Metrics) AuditDropped() {
	if m == nil {
		return
	}
	m.auditDropped.Inc()
}
