package testutil

import (
	"math"

	"github.com/hupe1980/cindex/distance"
)

// ReferenceCentroidIndex computes the centroid index the straightforward
// way: dense label slots, mean prototypes, Euclidean distance and a full
// vote matrix. Labels must be contiguous and the data non-empty.
func ReferenceCentroidIndex(data [][]float64, labelsA, labelsB []int, symmetric bool) int {
	protosA := referencePrototypes(data, labelsA)
	protosB := referencePrototypes(data, labelsB)

	forward := referenceOrphans(protosA, protosB)
	if !symmetric {
		return forward
	}
	return max(forward, referenceOrphans(protosB, protosA))
}

func referencePrototypes(data [][]float64, labels []int) [][]float64 {
	lo, hi := labels[0], labels[0]
	for _, l := range labels {
		lo = min(lo, l)
		hi = max(hi, l)
	}

	dim := len(data[0])
	sums := make([][]float64, hi-lo+1)
	counts := make([]int, hi-lo+1)
	for j := range sums {
		sums[j] = make([]float64, dim)
	}
	for i, l := range labels {
		for d := range dim {
			sums[l-lo][d] += data[i][d]
		}
		counts[l-lo]++
	}
	for j := range sums {
		for d := range dim {
			sums[j][d] /= float64(counts[j])
		}
	}
	return sums
}

func referenceOrphans(a, b [][]float64) int {
	nearest := make([][]int, len(a))
	for i := range a {
		nearest[i] = make([]int, len(b))
		idx := -1
		best := math.Inf(1)
		for j := range b {
			if d := distance.Euclidean(a[i], b[j]); d < best {
				best = d
				idx = j
			}
		}
		if idx < 0 {
			idx = len(b) - 1
		}
		nearest[i][idx] = 1
	}

	orphans := 0
	for j := range b {
		votes := 0
		for i := range a {
			votes += nearest[i][j]
		}
		if votes == 0 {
			orphans++
		}
	}
	return orphans
}
