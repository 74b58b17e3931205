package cindex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cindex/distance"
	"github.com/hupe1980/cindex/internal/match"
	"github.com/hupe1980/cindex/partition"
	"github.com/hupe1980/cindex/prototype"
)

var (
	// ErrEmptyCluster is returned when a prototype is requested for a cluster
	// without members. Only dense label layouts (WithDenseLabels) with gaps
	// between used labels produce such clusters.
	ErrEmptyCluster = errors.New("empty cluster has no prototype")

	// ErrEmptyTargetSet is returned when prototypes are matched against an
	// empty prototype set.
	ErrEmptyTargetSet = errors.New("empty target prototype set")
)

// ErrDimensionMismatch indicates a length disagreement: labels vs. points,
// or vectors of differing dimensionality.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrUnknownMetric indicates a metric name that is not recognized.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnknownMetric struct {
	Name  string
	cause error
}

func (e *ErrUnknownMetric) Error() string {
	return fmt.Sprintf("unknown metric: %q", e.Name)
}

func (e *ErrUnknownMetric) Unwrap() error { return e.cause }

// ErrUnknownPrototype indicates a prototype strategy name that is not recognized.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnknownPrototype struct {
	Name  string
	cause error
}

func (e *ErrUnknownPrototype) Error() string {
	return fmt.Sprintf("unknown prototype strategy: %q", e.Name)
}

func (e *ErrUnknownPrototype) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, prototype.ErrEmptyCluster) || errors.Is(err, partition.ErrLabelRange) {
		return fmt.Errorf("%w: %w", ErrEmptyCluster, err)
	}
	if errors.Is(err, match.ErrEmptyTargetSet) {
		return fmt.Errorf("%w: %w", ErrEmptyTargetSet, err)
	}

	var lm *partition.ErrLengthMismatch
	if errors.As(err, &lm) {
		return &ErrDimensionMismatch{Expected: lm.Points, Actual: lm.Labels, cause: err}
	}
	var pdm *prototype.ErrDimensionMismatch
	if errors.As(err, &pdm) {
		return &ErrDimensionMismatch{Expected: pdm.Expected, Actual: pdm.Actual, cause: err}
	}
	var um *distance.ErrUnknownMetric
	if errors.As(err, &um) {
		return &ErrUnknownMetric{Name: um.Name, cause: err}
	}
	var us *prototype.ErrUnknownStrategy
	if errors.As(err, &us) {
		return &ErrUnknownPrototype{Name: us.Name, cause: err}
	}

	return err
}
