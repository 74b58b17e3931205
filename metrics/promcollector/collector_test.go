package promcollector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/cindex"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Record(t *testing.T) {
	c := New()

	c.RecordEvaluate(10*time.Millisecond, nil)
	c.RecordEvaluate(time.Millisecond, errors.New("boom"))
	c.RecordMatch("forward", 5, 3, 2, time.Millisecond)
	c.RecordMatch("forward", 4, 3, 1, time.Millisecond)
	c.RecordMatch("backward", 3, 5, 0, time.Millisecond)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.evaluations.WithLabelValues("success")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.evaluations.WithLabelValues("error")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.matches.WithLabelValues("forward")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.matches.WithLabelValues("backward")))
	assert.Equal(t, 3.0, promtestutil.ToFloat64(c.orphans.WithLabelValues("forward")))
	assert.Equal(t, 9.0, promtestutil.ToFloat64(c.prototypes.WithLabelValues("forward")))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.evalLatency))
}

func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegisterer(reg), WithNamespace("test"))

	c.RecordEvaluate(time.Millisecond, nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_evaluations_total")
	assert.Contains(t, names, "test_evaluation_duration_seconds")

	assert.Panics(t, func() { New(WithRegisterer(reg), WithNamespace("test")) })
}

func TestCollector_WithCentroidIndex(t *testing.T) {
	c := New(WithBuckets([]float64{0.001, 0.01, 0.1}))
	data := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	ci, err := cindex.CentroidIndex(context.Background(), data, []int{0, 1, 2, 2}, []int{0, 0, 0, 0},
		cindex.WithMetricsCollector(c))
	require.NoError(t, err)
	assert.Equal(t, 2, ci)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.evaluations.WithLabelValues("success")))
	assert.Equal(t, 0.0, promtestutil.ToFloat64(c.orphans.WithLabelValues("forward")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.orphans.WithLabelValues("backward")))
	assert.Equal(t, 3.0, promtestutil.ToFloat64(c.prototypes.WithLabelValues("forward")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.prototypes.WithLabelValues("backward")))
}
