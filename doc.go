// Package cindex computes the Centroid Index (CI), a cluster-level
// dissimilarity measure between two clusterings of the same dataset.
//
// Each clustering is reduced to one prototype per cluster (by default the
// cluster mean). Every prototype of one solution is mapped to its nearest
// prototype in the other; prototypes that receive no mapping are orphans.
// The number of orphans is the directional index, and the symmetric CI is
// the maximum of both directions. CI = 0 means the solutions have the same
// cluster-level structure; CI = k means k clusters are allocated differently.
//
// # Quick Start
//
//	ctx := context.Background()
//	ci, err := cindex.CentroidIndex(ctx, data, truth, labels)
//
// Detailed results:
//
//	r, _ := cindex.Evaluate(ctx, data, truth, labels, cindex.WithSymmetric(true))
//	fmt.Println(r.Index, r.Forward, r.Backward, r.ClustersA, r.ClustersB)
//
// Comparing two codebooks directly:
//
//	r, _ := cindex.FromPrototypes(ctx, codebookA, codebookB)
//
// # Metrics and Prototypes
//
// Distances between prototypes use a built-in metric (see package distance)
// or a caller-supplied function:
//
//	cindex.WithMetric(distance.MetricManhattan)
//	cindex.WithMetricName("cosine")
//	cindex.WithDistanceFunc(myDistance)
//
// Prototypes are cluster means unless another strategy is configured:
//
//	cindex.WithPrototypeFunc(func(c prototype.Cluster) ([]float64, error) { ... })
//
// # Labels
//
// Labels are arbitrary integers; one cluster is formed per observed label.
// WithDenseLabels switches to one slot per integer between the smallest and
// largest label, in which case unused labels fail with ErrEmptyCluster.
//
// # Determinism
//
// Nearest-prototype ties resolve to the lowest cluster index (clusters are
// ordered by ascending label). WithParallelism distributes the scan across
// goroutines and produces identical results.
//
// # Observability
//
//	cindex.WithLogger(cindex.NewJSONLogger(slog.LevelDebug))
//	cindex.WithMetricsCollector(&cindex.BasicMetricsCollector{})
//
// The metrics/promcollector package adapts MetricsCollector to Prometheus.
//
// # Datasets
//
// Package dataset reads the plain-text vector, label and codebook formats
// from local files, memory, S3 or MinIO through the blobstore abstraction.
package cindex
