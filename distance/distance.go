package distance

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation between two prototypes.
// Smaller values mean closer prototypes.
type Func func(a, b []float64) float64

// Metric identifies a built-in distance metric.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricChebyshev
	MetricCosine
	MetricHamming
	MetricCanberra
	MetricBrayCurtis
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricSquaredEuclidean:
		return "sqeuclidean"
	case MetricManhattan:
		return "manhattan"
	case MetricChebyshev:
		return "chebyshev"
	case MetricCosine:
		return "cosine"
	case MetricHamming:
		return "hamming"
	case MetricCanberra:
		return "canberra"
	case MetricBrayCurtis:
		return "braycurtis"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// names maps accepted metric names (including common aliases) to metrics.
var names = map[string]Metric{
	"euclidean":   MetricEuclidean,
	"l2":          MetricEuclidean,
	"minkowski":   MetricEuclidean, // p=2; other p via Minkowski
	"sqeuclidean": MetricSquaredEuclidean,
	"manhattan":   MetricManhattan,
	"cityblock":   MetricManhattan,
	"l1":          MetricManhattan,
	"chebyshev":   MetricChebyshev,
	"infinity":    MetricChebyshev,
	"cosine":      MetricCosine,
	"hamming":     MetricHamming,
	"canberra":    MetricCanberra,
	"braycurtis":  MetricBrayCurtis,
}

// ErrUnknownMetric is returned when a metric name or value is not recognized.
type ErrUnknownMetric struct {
	Name string
}

func (e *ErrUnknownMetric) Error() string {
	return fmt.Sprintf("unknown metric: %q", e.Name)
}

// Parse resolves a metric name. Matching is case-insensitive.
func Parse(name string) (Metric, error) {
	m, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &ErrUnknownMetric{Name: name}
	}
	return m, nil
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricCosine:
		return Cosine, nil
	case MetricHamming:
		return Hamming, nil
	case MetricCanberra:
		return Canberra, nil
	case MetricBrayCurtis:
		return BrayCurtis, nil
	default:
		return nil, &ErrUnknownMetric{Name: m.String()}
	}
}

// Euclidean calculates the L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two vectors.
// It ranks neighbors exactly like Euclidean without the square root.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 (city block) distance between two vectors.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Chebyshev calculates the L-infinity distance between two vectors.
func Chebyshev(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Minkowski returns the L-p distance function. p must be >= 1.
func Minkowski(p float64) (Func, error) {
	if p < 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("minkowski: p must be >= 1, got %v", p)
	}
	return func(a, b []float64) float64 {
		return floats.Distance(a, b, p)
	}, nil
}

// Cosine calculates the cosine distance (1 - cosine similarity).
// A zero-magnitude vector has similarity 0, so its distance is 1.
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - floats.Dot(a, b)/(na*nb)
}

// Hamming calculates the fraction of coordinates that differ.
func Hamming(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	var diff int
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return float64(diff) / float64(len(a))
}

// Canberra calculates the Canberra distance. Coordinates where both
// values are zero contribute nothing.
func Canberra(a, b []float64) float64 {
	var sum float64
	for i := range a {
		den := math.Abs(a[i]) + math.Abs(b[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / den
	}
	return sum
}

// BrayCurtis calculates the Bray-Curtis dissimilarity.
// Returns 0 when both vectors sum to zero in absolute terms.
func BrayCurtis(a, b []float64) float64 {
	var num, den float64
	for i := range a {
		num += math.Abs(a[i] - b[i])
		den += math.Abs(a[i] + b[i])
	}
	if den == 0 {
		return 0
	}
	return num / den
}
