// Package promcollector exports centroid index metrics to Prometheus.
//
//	c := promcollector.New(promcollector.WithRegisterer(prometheus.DefaultRegisterer))
//	ci, err := cindex.CentroidIndex(ctx, data, a, b, cindex.WithMetricsCollector(c))
package promcollector

import (
	"time"

	"github.com/hupe1980/cindex"
	"github.com/prometheus/client_golang/prometheus"
)

var _ cindex.MetricsCollector = (*Collector)(nil)

// Collector implements cindex.MetricsCollector with Prometheus vectors.
type Collector struct {
	evaluations *prometheus.CounterVec
	evalLatency prometheus.Histogram
	matches     *prometheus.CounterVec
	orphans     *prometheus.CounterVec
	prototypes  *prometheus.CounterVec
	matchTime   *prometheus.HistogramVec
}

type options struct {
	namespace  string
	registerer prometheus.Registerer
	buckets    []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace. Default "cindex".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithRegisterer registers the collector's metrics with r.
// Without it nothing is registered.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// WithBuckets sets the latency histogram buckets in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector. It panics if registration fails, like
// prometheus.MustRegister.
func New(optFns ...Option) *Collector {
	o := options{
		namespace: "cindex",
		buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Collector{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "evaluations_total",
			Help:      "Total centroid index computations",
		}, []string{"status"}),
		evalLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Latency of centroid index computations",
			Buckets:   o.buckets,
		}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "matches_total",
			Help:      "Total nearest-prototype matching passes",
		}, []string{"direction"}),
		orphans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "orphans_total",
			Help:      "Total orphan prototypes found",
		}, []string{"direction"}),
		prototypes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "matched_prototypes_total",
			Help:      "Total source prototypes matched",
		}, []string{"direction"}),
		matchTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "match_duration_seconds",
			Help:      "Latency of matching passes",
			Buckets:   o.buckets,
		}, []string{"direction"}),
	}

	if o.registerer != nil {
		o.registerer.MustRegister(c.Collectors()...)
	}
	return c
}

// Collectors returns the underlying Prometheus collectors.
func (c *Collector) Collectors() []prometheus.Collector {
	return []prometheus.Collector{c.evaluations, c.evalLatency, c.matches, c.orphans, c.prototypes, c.matchTime}
}

// RecordEvaluate implements cindex.MetricsCollector.
func (c *Collector) RecordEvaluate(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.evaluations.WithLabelValues(status).Inc()
	c.evalLatency.Observe(duration.Seconds())
}

// RecordMatch implements cindex.MetricsCollector.
func (c *Collector) RecordMatch(direction string, sources, _, orphans int, duration time.Duration) {
	c.matches.WithLabelValues(direction).Inc()
	c.prototypes.WithLabelValues(direction).Add(float64(sources))
	c.orphans.WithLabelValues(direction).Add(float64(orphans))
	c.matchTime.WithLabelValues(direction).Observe(duration.Seconds())
}
