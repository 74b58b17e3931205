// Package distance provides the distance metrics used to match cluster prototypes.
//
// Every metric is a Func over two equal-length float64 vectors. Built-in metrics
// can be selected by value or by name:
//
//	fn, err := distance.Provider(distance.MetricEuclidean)
//
//	m, err := distance.Parse("cityblock") // MetricManhattan
//	fn, err = distance.Provider(m)
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance ("euclidean", "l2"), the default
//   - MetricSquaredEuclidean: squared L2 ("sqeuclidean")
//   - MetricManhattan: L1 distance ("manhattan", "cityblock", "l1")
//   - MetricChebyshev: L-infinity distance ("chebyshev", "infinity")
//   - MetricCosine: 1 - cosine similarity ("cosine")
//   - MetricHamming: fraction of differing coordinates ("hamming")
//   - MetricCanberra: weighted L1 ("canberra")
//   - MetricBrayCurtis: Bray-Curtis dissimilarity ("braycurtis")
//
// Minkowski(p) builds an L-p distance for arbitrary p >= 1.
package distance
