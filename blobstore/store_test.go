package blobstore

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("0 1 1 2")
	require.NoError(t, store.Put(ctx, "labels.pa", data))

	// Mutating the caller's slice does not affect the stored blob.
	data[0] = '9'

	blob, err := store.Open(ctx, "labels.pa")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(7), blob.Size())

	buf := make([]byte, 3)
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "0 1", string(buf))

	n, err = blob.ReadAt(ctx, make([]byte, 10), 4)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, err, io.EOF)

	_, err = blob.ReadAt(ctx, buf, -1)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	rc, err := blob.ReadRange(ctx, 2, 100)
	require.NoError(t, err)
	rest, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1 1 2", string(rest))

	_, err = store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, name := range []string{"b/2", "a/1", "b/1"} {
		require.NoError(t, store.Put(ctx, name, nil))
	}

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "b/1", "b/2"}, all)

	b, err := store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/1", "b/2"}, b)
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "cb.txt", []byte("1 2\n3 4\n")))

	got, err := ReadAll(ctx, store, "cb.txt")
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4\n", string(got))

	_, err = ReadAll(ctx, store, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateLimitedStore(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i)
	}
	require.NoError(t, inner.Put(ctx, "data", payload))

	t.Run("PassThrough", func(t *testing.T) {
		store := NewRateLimitedStore(inner, 1<<30, 1024)

		got, err := ReadAll(ctx, store, "data")
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		b, err := store.Open(ctx, "data")
		require.NoError(t, err)
		buf := make([]byte, 3000)
		n, err := b.ReadAt(ctx, buf, 100)
		require.NoError(t, err)
		assert.Equal(t, 3000, n)
		assert.Equal(t, payload[100:3100], buf)

		_, isMappable := b.(Mappable)
		assert.False(t, isMappable)
	})

	t.Run("Unlimited", func(t *testing.T) {
		store := NewRateLimitedStore(inner, 0, 0)

		require.NoError(t, store.Put(ctx, "copy", payload))
		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"copy", "data"}, names)
	})

	t.Run("DeadlineExceeded", func(t *testing.T) {
		// 16 bytes/s: the second burst cannot arrive before the deadline.
		store := NewRateLimitedStore(inner, 16, 16)
		b, err := store.Open(ctx, "data")
		require.NoError(t, err)

		tctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err = b.ReadAt(tctx, make([]byte, 64), 0)
		assert.Error(t, err)
	})

	t.Run("Canceled", func(t *testing.T) {
		store := NewRateLimitedStore(inner, 16, 16)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.Error(t, store.Put(canceled, "x", []byte("abc")))
	})
}
