package testutil

import (
	"errors"
	"math"

	"github.com/hupe1980/cindex/distance"
)

// ErrTooFewPoints is returned when k exceeds the number of points.
var ErrTooFewPoints = errors.New("testutil: fewer points than clusters")

// KMeans clusters data into k groups using Lloyd's algorithm and returns the
// label of every point (in [0,k)) together with the final centroids.
// Centroids are seeded from a random sample of the points, so results are
// reproducible for a given RNG seed.
//
// It stands in for the external clustering procedure whose output is
// compared with the centroid index; it is not tuned for quality.
func (r *RNG) KMeans(data [][]float64, k, maxIter int) ([]int, [][]float64, error) {
	n := len(data)
	if k <= 0 || n < k {
		return nil, nil, ErrTooFewPoints
	}
	dim := len(data[0])

	centroids := make([][]float64, k)
	perm := r.Perm(n)
	for i := range k {
		centroids[i] = append([]float64(nil), data[perm[i]]...)
	}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dim)
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false

		// Assignment step
		for i, vec := range data {
			best := -1
			minDist := math.Inf(1)
			for j, center := range centroids {
				d := distance.SquaredEuclidean(vec, center)
				if d < minDist {
					minDist = d
					best = j
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step
		for j := range sums {
			clear(sums[j])
			counts[j] = 0
		}
		for i, vec := range data {
			c := assignments[i]
			for d := range dim {
				sums[c][d] += vec[d]
			}
			counts[c]++
		}

		for j := range centroids {
			if counts[j] > 0 {
				scale := 1.0 / float64(counts[j])
				for d := range dim {
					centroids[j][d] = sums[j][d] * scale
				}
			} else {
				// Re-seed an empty cluster with a random point.
				copy(centroids[j], data[r.Intn(n)])
			}
		}
	}

	return assignments, centroids, nil
}
