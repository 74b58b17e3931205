package cindex

import (
	"log/slog"

	"github.com/hupe1980/cindex/distance"
	"github.com/hupe1980/cindex/prototype"
)

type options struct {
	metric           distance.Metric
	metricName       string
	distanceFunc     distance.Func
	prototype        prototype.Strategy
	symmetric        bool
	denseLabels      bool
	parallelism      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a centroid index computation.
type Option func(*options)

// WithMetric selects a built-in distance metric. The default is
// distance.MetricEuclidean.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
		o.metricName = ""
		o.distanceFunc = nil
	}
}

// WithMetricName selects a built-in distance metric by name, e.g. "euclidean",
// "cityblock" or "cosine". Unknown names fail with *ErrUnknownMetric when the
// computation runs.
func WithMetricName(name string) Option {
	return func(o *options) {
		o.metricName = name
		o.distanceFunc = nil
	}
}

// WithDistanceFunc injects a caller-supplied distance function between two
// prototypes. It takes precedence over any named metric.
//
// Example:
//
//	weighted := func(a, b []float64) float64 {
//	    return math.Abs(a[0]-b[0]) + 10*math.Abs(a[1]-b[1])
//	}
//	ci, _ := cindex.CentroidIndex(ctx, data, a, b, cindex.WithDistanceFunc(weighted))
func WithDistanceFunc(fn distance.Func) Option {
	return func(o *options) {
		o.distanceFunc = fn
	}
}

// WithPrototype selects the prototype strategy. The default is prototype.Center.
func WithPrototype(s prototype.Strategy) Option {
	return func(o *options) {
		o.prototype = s
	}
}

// WithPrototypeFunc injects a caller-supplied cluster reduction.
// Shorthand for WithPrototype(prototype.Custom(fn)).
func WithPrototypeFunc(fn prototype.Func) Option {
	return func(o *options) {
		o.prototype = prototype.Custom(fn)
	}
}

// WithSymmetric controls whether both matching directions are evaluated and
// the maximum returned (true, the default) or only A→B (false).
func WithSymmetric(symmetric bool) Option {
	return func(o *options) {
		o.symmetric = symmetric
	}
}

// WithDenseLabels groups points into one slot per label in [min, max] instead
// of one cluster per observed label. Unused labels inside the range become
// empty clusters, which have no prototype and fail with ErrEmptyCluster.
func WithDenseLabels() Option {
	return func(o *options) {
		o.denseLabels = true
	}
}

// WithParallelism scans up to n source prototypes concurrently during
// matching. Results are identical to the sequential scan.
// If n <= 1, matching is sequential (default).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cindex.BasicMetricsCollector{}
//	_, _ = cindex.Evaluate(ctx, data, a, b, cindex.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Evaluations: %d, Avg latency: %dns\n", stats.EvaluateCount, stats.EvaluateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cindex.NewJSONLogger(slog.LevelDebug)
//	ci, _ := cindex.CentroidIndex(ctx, data, a, b, cindex.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metric:           distance.MetricEuclidean,
		prototype:        prototype.Center,
		symmetric:        true,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// resolveDistance returns the distance function and whether it is a named
// built-in (which requires equal-length prototypes).
func (o *options) resolveDistance() (distance.Func, bool, error) {
	if o.distanceFunc != nil {
		return o.distanceFunc, false, nil
	}

	m := o.metric
	if o.metricName != "" {
		parsed, err := distance.Parse(o.metricName)
		if err != nil {
			return nil, true, err
		}
		m = parsed
	}

	fn, err := distance.Provider(m)
	return fn, true, err
}

// metricLabel names the configured distance for logging.
func (o *options) metricLabel() string {
	switch {
	case o.distanceFunc != nil:
		return "custom"
	case o.metricName != "":
		return o.metricName
	default:
		return o.metric.String()
	}
}
