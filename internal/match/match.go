package match

import (
	"context"
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyTargetSet is returned when non-empty sources are matched against
// an empty target set.
var ErrEmptyTargetSet = errors.New("match: empty target prototype set")

// Option configures Run.
type Option func(*options)

type options struct {
	parallelism int
}

// WithParallelism scans up to n sources concurrently. n <= 1 scans sequentially.
// Results are identical for every n.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// Result describes the nearest-prototype assignment from sources to targets.
type Result struct {
	// Nearest[i] is the index of the target closest to source i.
	Nearest []int
	// Votes[j] is the number of sources whose nearest target is j.
	Votes []int
	// Orphaned lists target indices that received no vote, ascending.
	Orphaned []int
	// Orphans is len(Orphaned).
	Orphans int
}

// Nearest returns the index of the target closest to source. Ties resolve to
// the smallest index. When no distance compares below +Inf (all NaN or
// infinite) the last target is returned. targets must be non-empty.
func Nearest[P any](source P, targets []P, dist func(P, P) float64) int {
	best := -1
	bestDist := math.Inf(1)
	for j := range targets {
		d := dist(source, targets[j])
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	if best < 0 {
		return len(targets) - 1
	}
	return best
}

// Run matches every source to its nearest target and counts the targets
// that were matched by no source.
func Run[P any](ctx context.Context, sources, targets []P, dist func(P, P) float64, optFns ...Option) (*Result, error) {
	o := options{parallelism: 1}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if len(targets) == 0 {
		if len(sources) == 0 {
			return &Result{}, nil
		}
		return nil, ErrEmptyTargetSet
	}

	nearest, err := scan(ctx, sources, targets, dist, o.parallelism)
	if err != nil {
		return nil, err
	}

	votes := make([]int, len(targets))
	matched := roaring.New()
	for _, j := range nearest {
		votes[j]++
		matched.Add(uint32(j))
	}

	orphaned := make([]int, 0, len(targets)-int(matched.GetCardinality()))
	for j := range targets {
		if !matched.Contains(uint32(j)) {
			orphaned = append(orphaned, j)
		}
	}

	return &Result{
		Nearest:  nearest,
		Votes:    votes,
		Orphaned: orphaned,
		Orphans:  len(targets) - int(matched.GetCardinality()),
	}, nil
}

// CountOrphans returns the number of targets that are the nearest target of
// no source.
func CountOrphans[P any](ctx context.Context, sources, targets []P, dist func(P, P) float64, optFns ...Option) (int, error) {
	res, err := Run(ctx, sources, targets, dist, optFns...)
	if err != nil {
		return 0, err
	}
	return res.Orphans, nil
}

func scan[P any](ctx context.Context, sources, targets []P, dist func(P, P) float64, parallelism int) ([]int, error) {
	nearest := make([]int, len(sources))

	if parallelism <= 1 || len(sources) < 2 {
		for i := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			nearest[i] = Nearest(sources[i], targets, dist)
		}
		return nearest, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nearest[i] = Nearest(sources[i], targets, dist)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return nearest, nil
}
