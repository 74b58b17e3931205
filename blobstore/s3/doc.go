// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	loader := dataset.NewLoader(store)
//	set, err := loader.Load(ctx, dataset.Files{Vectors: "s1.txt", Labels: "s1-label.pa"})
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads with CRC32C checksums for large files
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
