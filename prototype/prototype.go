// Package prototype reduces a cluster to a single representative vector.
//
// The built-in "center" strategy returns the arithmetic mean of the members.
// Callers may inject any reduction through Custom.
package prototype

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NameCenter is the name of the arithmetic mean strategy.
const NameCenter = "center"

// ErrEmptyCluster is returned when a prototype is requested for a cluster
// without members.
var ErrEmptyCluster = errors.New("prototype: empty cluster")

// ErrUnknownStrategy is returned when a strategy name is not recognized.
type ErrUnknownStrategy struct {
	Name string
}

func (e *ErrUnknownStrategy) Error() string {
	return fmt.Sprintf("prototype: unknown strategy %q", e.Name)
}

// ErrDimensionMismatch indicates a member whose length differs from the
// first member of its cluster.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("prototype: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Cluster is an ordered sequence of member vectors.
type Cluster = [][]float64

// Func maps a non-empty cluster to its prototype.
type Func func(cluster Cluster) ([]float64, error)

// Strategy is either a named built-in reduction or a caller-supplied Func.
// The zero value selects "center".
type Strategy struct {
	name string
	fn   Func
}

// Center is the arithmetic mean strategy.
var Center = Named(NameCenter)

// Named selects a built-in strategy by name. Unknown names fail in Resolve.
func Named(name string) Strategy {
	return Strategy{name: name}
}

// Custom wraps a caller-supplied reduction.
func Custom(fn Func) Strategy {
	return Strategy{name: "custom", fn: fn}
}

// String returns the strategy name.
func (s Strategy) String() string {
	if s.name == "" {
		return NameCenter
	}
	return s.name
}

// IsCustom reports whether the strategy wraps a caller function.
func (s Strategy) IsCustom() bool {
	return s.fn != nil
}

// Resolve returns the reduction function of the strategy.
func (s Strategy) Resolve() (Func, error) {
	if s.fn != nil {
		return s.fn, nil
	}
	switch strings.ToLower(strings.TrimSpace(s.String())) {
	case NameCenter, "centroid", "mean":
		return Mean, nil
	default:
		return nil, &ErrUnknownStrategy{Name: s.name}
	}
}

// Mean computes the element-wise arithmetic mean of the cluster.
// Members are summed in cluster order.
func Mean(cluster Cluster) ([]float64, error) {
	if len(cluster) == 0 {
		return nil, ErrEmptyCluster
	}

	dim := len(cluster[0])
	sum := make([]float64, dim)
	for _, v := range cluster {
		if len(v) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
		floats.Add(sum, v)
	}
	floats.Scale(1/float64(len(cluster)), sum)

	return sum, nil
}

// All computes one prototype per cluster, in cluster order.
// Empty clusters fail with ErrEmptyCluster before fn is invoked.
func All(ctx context.Context, clusters []Cluster, fn Func) ([][]float64, error) {
	protos := make([][]float64, len(clusters))
	for i, c := range clusters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(c) == 0 {
			return nil, fmt.Errorf("cluster %d: %w", i, ErrEmptyCluster)
		}
		p, err := fn(c)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		protos[i] = p
	}
	return protos, nil
}
