package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.OracleCall(OutcomeTimeout, time.Second)
	m.OracleCall(OutcomeTimeout, time.Second)
	m.OracleCall(OutcomePrioritized, time.Second)
	m.Mutation("payments", "create")
	m.IntegrityWarnings(3)

	if got := testutil.ToFloat64(m.oracleCalls.WithLabelValues(OutcomeTimeout)); got != 2 {
		t.Errorf("timeout calls = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("payments", "create")); got != 1 {
		t.Errorf("payment creates = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.integrityWarnings); got != 3 {
		t.Errorf("integrity warnings = %v, want 3", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("/x", "ok", time.Millisecond)
	m.Mutation("members", "delete")
	m.CacheInvalidated("members")
	m.OracleCall(OutcomeError, 0)
	m.IntegrityWarnings(1)
	m.AuditDropped()
}
