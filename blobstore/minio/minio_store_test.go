package minio

import (
	"context"
	"io"
	"testing"

	"github.com/hupe1980/cindex/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Keys(t *testing.T) {
	testCases := []struct {
		prefix string
		name   string
		key    string
	}{
		{"", "s1.txt", "s1.txt"},
		{"datasets/", "s1.txt", "datasets/s1.txt"},
		{"datasets", "s1/s1-label.pa", "datasets/s1/s1-label.pa"},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			s := NewStore(nil, "bucket", tc.prefix)
			assert.Equal(t, tc.key, s.key(tc.name))
			assert.Equal(t, tc.name, s.relativeName(tc.key))
		})
	}
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-cindex"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("1.5 2.5\n3.5 4.5\n")
	require.NoError(t, store.Put(ctx, "s1.txt", data))
	t.Cleanup(func() {
		_ = client.RemoveObject(ctx, bucket, store.key("s1.txt"), minio.RemoveObjectOptions{})
	})

	blob, err := store.Open(ctx, "s1.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)

	rc, err := blob.ReadRange(ctx, 8, 7)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "3.5 4.5", string(part))
	require.NoError(t, blob.Close())

	got, err := blobstore.ReadAll(ctx, store, "s1.txt")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "s1.txt")

	_, err = store.Open(ctx, "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
