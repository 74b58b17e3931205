package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates random vectors with values from a standard normal distribution.
func (r *RNG) GaussianVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// Blobs generates perCluster points around each center with Gaussian noise.
// Points are interleaved (point i belongs to center i%len(centers)) and the
// returned labels give the generating center of every point.
func (r *RNG) Blobs(centers [][]float64, perCluster int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centers) * perCluster
	vectors := make([][]float64, num)
	labels := make([]int, num)

	for i := range num {
		c := i % len(centers)
		center := centers[c]
		vec := make([]float64, len(center))
		for j := range vec {
			vec[j] = center[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
		labels[i] = c
	}

	return vectors, labels
}

// GridCenters returns k centers on a line with the given spacing along every axis.
func GridCenters(k, dim int, spacing float64) [][]float64 {
	centers := make([][]float64, k)
	for i := range centers {
		c := make([]float64, dim)
		for j := range c {
			c[j] = float64(i) * spacing
		}
		centers[i] = c
	}
	return centers
}

// RandomLabels returns n labels drawn uniformly from [0,k).
func (r *RNG) RandomLabels(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]int, n)
	for i := range labels {
		labels[i] = r.rand.Intn(k)
	}
	return labels
}

// Relabel maps every label value through a random injective renaming.
// The grouping of points is unchanged; only the label values (and hence
// the cluster order) differ. offset shifts the new values.
func (r *RNG) Relabel(labels []int, offset int) []int {
	var distinct []int
	seen := make(map[int]struct{})
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			distinct = append(distinct, l)
		}
	}
	slices.Sort(distinct)

	perm := r.Perm(len(distinct))
	mapping := make(map[int]int, len(distinct))
	for i, l := range distinct {
		mapping[l] = offset + perm[i]*3
	}

	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = mapping[l]
	}
	return out
}
