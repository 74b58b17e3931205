// Package testutil provides testing utilities for cindex.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating clustered datasets and label
// assignments, a k-means labeler that plays the role of an external
// clustering procedure, and a literal reference implementation of the
// centroid index used to cross-check the library.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	data, truth := rng.Blobs(testutil.GridCenters(5, 2, 100), 50, 1.0)
//	noise := rng.RandomLabels(len(data), 5)
//
// # External Clustering
//
//	labels, centroids, err := rng.KMeans(data, k, 100)
//
// # Reference Centroid Index
//
//	ci := testutil.ReferenceCentroidIndex(data, labels, truth, true)
package testutil
