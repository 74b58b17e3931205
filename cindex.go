package cindex

import (
	"context"
	"time"

	"github.com/hupe1980/cindex/distance"
	"github.com/hupe1980/cindex/internal/match"
	"github.com/hupe1980/cindex/partition"
	"github.com/hupe1980/cindex/prototype"
)

const (
	directionForward  = "forward"
	directionBackward = "backward"
)

// Report is the detailed outcome of a centroid index computation.
type Report struct {
	// Index is the centroid index: max(Forward, Backward) when Symmetric,
	// Forward otherwise.
	Index int
	// Forward is the number of B prototypes that no A prototype chose as nearest.
	Forward int
	// Backward is the number of A prototypes that no B prototype chose as
	// nearest. Zero when not Symmetric.
	Backward int
	// ClustersA and ClustersB are the number of prototypes on each side.
	ClustersA int
	ClustersB int
	Symmetric bool
	Duration  time.Duration
}

// CentroidIndex returns the centroid index of two labelings of the same
// dataset. 0 means the two clusterings agree at the centroid level; larger
// values count clusters of one solution that have no counterpart in the other.
//
// data is an N×D matrix and labelsA, labelsB carry one integer label per row.
// Labels are arbitrary integers and need not be contiguous.
//
// Comparing a labeling with itself yields 0 unless two of its clusters have
// identical prototypes: both then match the lower-indexed one and the other
// becomes an orphan.
func CentroidIndex(ctx context.Context, data [][]float64, labelsA, labelsB []int, optFns ...Option) (int, error) {
	r, err := Evaluate(ctx, data, labelsA, labelsB, optFns...)
	if err != nil {
		return 0, err
	}
	return r.Index, nil
}

// Evaluate is like CentroidIndex but returns both directional counts and
// the cluster counts.
func Evaluate(ctx context.Context, data [][]float64, labelsA, labelsB []int, optFns ...Option) (*Report, error) {
	o := applyOptions(optFns)
	o.logger = o.logger.WithMetric(o.metricLabel()).WithPrototype(o.prototype.String())
	start := time.Now()

	r, err := evaluate(ctx, &o, data, labelsA, labelsB)
	err = translateError(err)
	o.finish(ctx, start, r, err)

	return r, err
}

// FromPrototypes computes the centroid index of two codebooks directly,
// skipping partitioning and prototype computation. Each row is the prototype
// of one cluster.
func FromPrototypes(ctx context.Context, protosA, protosB [][]float64, optFns ...Option) (*Report, error) {
	o := applyOptions(optFns)
	o.logger = o.logger.WithMetric(o.metricLabel())
	start := time.Now()

	r, err := compare(ctx, &o, protosA, protosB)
	err = translateError(err)
	o.finish(ctx, start, r, err)

	return r, err
}

func evaluate(ctx context.Context, o *options, data [][]float64, labelsA, labelsB []int) (*Report, error) {
	dim, err := checkDimensions(data)
	if err != nil {
		return nil, err
	}
	o.logger = o.logger.WithDimension(dim).WithCount(len(data))

	var popts []partition.Option
	if o.denseLabels {
		popts = append(popts, partition.WithMode(partition.Dense))
	}

	pa, err := partition.New(data, labelsA, popts...)
	if err != nil {
		return nil, err
	}
	pb, err := partition.New(data, labelsB, popts...)
	if err != nil {
		return nil, err
	}

	fn, err := o.prototype.Resolve()
	if err != nil {
		return nil, err
	}

	protosA, err := prototype.All(ctx, pa.Clusters, fn)
	if err != nil {
		return nil, err
	}
	protosB, err := prototype.All(ctx, pb.Clusters, fn)
	if err != nil {
		return nil, err
	}

	o.logger.DebugContext(ctx, "prototypes computed",
		"clusters_a", len(protosA),
		"clusters_b", len(protosB),
	)

	return compare(ctx, o, protosA, protosB)
}

func compare(ctx context.Context, o *options, protosA, protosB [][]float64) (*Report, error) {
	dist, named, err := o.resolveDistance()
	if err != nil {
		return nil, err
	}
	if named {
		// Built-in kernels index both operands by the first one's length.
		if _, err := checkDimensions(protosA, protosB); err != nil {
			return nil, err
		}
	}

	r := &Report{
		ClustersA: len(protosA),
		ClustersB: len(protosB),
		Symmetric: o.symmetric,
	}

	r.Forward, err = o.match(ctx, directionForward, protosA, protosB, dist)
	if err != nil {
		return nil, err
	}
	r.Index = r.Forward

	if o.symmetric {
		r.Backward, err = o.match(ctx, directionBackward, protosB, protosA, dist)
		if err != nil {
			return nil, err
		}
		r.Index = max(r.Forward, r.Backward)
	}

	return r, nil
}

func (o *options) match(ctx context.Context, direction string, sources, targets [][]float64, dist distance.Func) (int, error) {
	start := time.Now()

	res, err := match.Run(ctx, sources, targets, dist, match.WithParallelism(o.parallelism))
	if err != nil {
		return 0, err
	}

	o.metricsCollector.RecordMatch(direction, len(sources), len(targets), res.Orphans, time.Since(start))
	o.logger.LogMatch(ctx, direction, len(sources), len(targets), res.Orphans)

	return res.Orphans, nil
}

func (o *options) finish(ctx context.Context, start time.Time, r *Report, err error) {
	duration := time.Since(start)
	if r != nil {
		r.Duration = duration
	}
	o.metricsCollector.RecordEvaluate(duration, err)
	o.logger.LogEvaluate(ctx, r, err)
}

// checkDimensions verifies that all rows of all matrices have the length of
// the first row found and returns that length (0 without rows).
func checkDimensions(matrices ...[][]float64) (int, error) {
	dim := -1
	for _, m := range matrices {
		for _, row := range m {
			if dim < 0 {
				dim = len(row)
				continue
			}
			if len(row) != dim {
				return 0, &prototype.ErrDimensionMismatch{Expected: dim, Actual: len(row)}
			}
		}
	}
	return max(dim, 0), nil
}
