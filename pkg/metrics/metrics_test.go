package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vango-dev/ffui/pkg/patch"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg), WithNamespace("test"))

	c.Observe(patch.OpAppend)
	c.Observe(patch.OpAppend)
	c.Observe(patch.OpSetAttr)
	c.RecordRefresh(5*time.Millisecond, "", false)
	c.RecordRefresh(time.Millisecond, "F002", true)
	c.RecordRefresh(time.Millisecond, "", true)
	c.SessionStarted()
	c.SessionStarted()
	c.SessionEnded()
	c.RecordEvent("click")

	if got := testutil.ToFloat64(c.patchOps.WithLabelValues("append")); got != 2 {
		t.Errorf("append ops = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.patchOps.WithLabelValues("set_attr")); got != 1 {
		t.Errorf("set_attr ops = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.refreshErrors.WithLabelValues("F002")); got != 1 {
		t.Errorf("F002 errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.refreshErrors.WithLabelValues("unknown")); got != 1 {
		t.Errorf("unknown errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.sessionsActive); got != 1 {
		t.Errorf("sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.eventsTotal.WithLabelValues("click")); got != 1 {
		t.Errorf("click events = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.refreshDuration); got != 1 {
		t.Errorf("refresh histogram series = %d, want 1", got)
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.Observe(patch.OpRemove)
	c.RecordRefresh(time.Second, "F001", true)
	c.SessionStarted()
	c.SessionEnded()
	c.RecordEvent("input")
}
