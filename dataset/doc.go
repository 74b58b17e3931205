// Package dataset reads and writes the plain-text formats of clustering
// benchmark sets.
//
// Vector and codebook files hold one point per line with whitespace
// separated coordinates:
//
//	664159    550946
//	665845    557965
//
// Label (partition) files hold one integer per line, optionally preceded by
// a header that ends with a line of dashes:
//
//	VQ PARTITIONING FILE
//	k=15, N=5000
//	-----------------------------
//	1
//	1
//
// Files ending in .gz, .zst/.zstd or .lz4 are decompressed transparently.
// A Loader reads files from any blobstore.BlobStore:
//
//	set, err := dataset.NewLoader(blobstore.NewLocalStore("./data")).Load(ctx, dataset.Files{
//	    Vectors:  "s1.txt",
//	    Labels:   "s1-label.pa",
//	    Codebook: "s1-cb.txt",
//	})
package dataset
