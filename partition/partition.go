// Package partition groups a dataset into clusters according to a label assignment.
//
// Two layouts are supported:
//
//   - Sparse (default): one cluster per observed label, ordered by ascending label.
//     Gaps between labels never create clusters.
//   - Dense: one slot per label in [min, max]. Slots for labels without members
//     are kept as empty clusters. A range wider than the dataset fails with
//     ErrLabelRange.
//
// For contiguous labels both layouts are identical.
package partition

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Mode selects how labels are mapped to cluster slots.
type Mode int

const (
	// Sparse maps each observed label to its own cluster.
	Sparse Mode = iota
	// Dense allocates max-min+1 slots indexed by label-min.
	Dense
)

func (m Mode) String() string {
	switch m {
	case Sparse:
		return "sparse"
	case Dense:
		return "dense"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ErrLabelRange is returned in Dense mode when the label range has more
// slots than there are points. Such a range always leaves a slot without
// members.
var ErrLabelRange = errors.New("partition: dense label range exceeds point count")

// ErrLengthMismatch is returned when the label assignment and the dataset
// have different lengths.
type ErrLengthMismatch struct {
	Points int
	Labels int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("partition: %d labels for %d points", e.Labels, e.Points)
}

// Option configures New.
type Option func(*options)

type options struct {
	mode Mode
}

// WithMode selects the slot layout. The default is Sparse.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// Partition is an ordered collection of clusters. Cluster i holds the points
// labeled Labels[i], in original data order. Member slices alias the input
// dataset and must be treated as read-only.
type Partition struct {
	Labels   []int
	Clusters [][][]float64
}

// New groups data by labels.
func New(data [][]float64, labels []int, optFns ...Option) (*Partition, error) {
	o := options{mode: Sparse}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if len(labels) != len(data) {
		return nil, &ErrLengthMismatch{Points: len(data), Labels: len(labels)}
	}
	if len(data) == 0 {
		return &Partition{}, nil
	}

	switch o.mode {
	case Sparse:
		return sparse(data, labels), nil
	case Dense:
		return dense(data, labels)
	default:
		return nil, fmt.Errorf("partition: unknown mode %v", o.mode)
	}
}

func sparse(data [][]float64, labels []int) *Partition {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}

	keys := make([]int, 0, len(counts))
	for l := range counts {
		keys = append(keys, l)
	}
	slices.Sort(keys)

	slot := make(map[int]int, len(keys))
	clusters := make([][][]float64, len(keys))
	for i, l := range keys {
		slot[l] = i
		clusters[i] = make([][]float64, 0, counts[l])
	}

	for i, l := range labels {
		s := slot[l]
		clusters[s] = append(clusters[s], data[i])
	}

	return &Partition{Labels: keys, Clusters: clusters}
}

func dense(data [][]float64, labels []int) (*Partition, error) {
	lo, hi := math.MaxInt, math.MinInt
	for _, l := range labels {
		lo = min(lo, l)
		hi = max(hi, l)
	}

	// Slots are bounded by the point count before anything is allocated.
	span := uint64(hi) - uint64(lo)
	if span >= uint64(len(data)) {
		return nil, fmt.Errorf("%w: labels [%d, %d] for %d points", ErrLabelRange, lo, hi, len(data))
	}

	n := int(span) + 1
	keys := make([]int, n)
	clusters := make([][][]float64, n)
	for j := range keys {
		keys[j] = lo + j
		clusters[j] = [][]float64{}
	}

	for i, l := range labels {
		s := l - lo
		clusters[s] = append(clusters[s], data[i])
	}

	return &Partition{Labels: keys, Clusters: clusters}, nil
}

// Len returns the number of clusters (slots).
func (p *Partition) Len() int {
	return len(p.Clusters)
}

// Cluster returns the members of cluster i.
func (p *Partition) Cluster(i int) [][]float64 {
	return p.Clusters[i]
}

// Label returns the label of cluster i.
func (p *Partition) Label(i int) int {
	return p.Labels[i]
}

// Sizes returns the member count of every cluster.
func (p *Partition) Sizes() []int {
	sizes := make([]int, len(p.Clusters))
	for i, c := range p.Clusters {
		sizes[i] = len(c)
	}
	return sizes
}

// Total returns the number of points across all clusters.
func (p *Partition) Total() int {
	var n int
	for _, c := range p.Clusters {
		n += len(c)
	}
	return n
}

// Empty returns the labels of clusters without members. Only Dense
// partitions can contain such clusters.
func (p *Partition) Empty() []int {
	var out []int
	for i, c := range p.Clusters {
		if len(c) == 0 {
			out = append(out, p.Labels[i])
		}
	}
	return out
}
