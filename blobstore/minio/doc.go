// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// MinIO Go client and also works with other S3-compatible stores such as
// Ceph, SeaweedFS and Garage.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "benchmarks", "datasets/")
//	set, err := dataset.NewLoader(store).Load(ctx, dataset.Files{
//	    Vectors: "s1.txt",
//	    Labels:  "s1-label.pa",
//	})
package minio
