package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimitedStore wraps a BlobStore and throttles the bytes read from and
// written to it. It is used to keep dataset downloads from shared object
// stores within a bandwidth budget.
type RateLimitedStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore creates a store limited to bytesPerSec. burst is the
// largest chunk transferred without waiting; it defaults to bytesPerSec
// if <= 0. A non-positive bytesPerSec disables throttling.
func NewRateLimitedStore(inner BlobStore, bytesPerSec, burst int) *RateLimitedStore {
	limit := rate.Limit(bytesPerSec)
	if bytesPerSec <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = max(bytesPerSec, 1)
	}
	return &RateLimitedStore{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Open opens a blob whose reads are throttled.
func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &rateLimitedBlob{inner: b, limiter: s.limiter}, nil
}

// Put waits for the write budget and writes the blob.
func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	if err := waitBytes(ctx, s.limiter, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// List is not throttled.
func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type rateLimitedBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

func (b *rateLimitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := waitBytes(ctx, b.limiter, len(p)); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *rateLimitedBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	rc, err := b.inner.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return &rateLimitedReader{ctx: ctx, inner: rc, limiter: b.limiter}, nil
}

func (b *rateLimitedBlob) Size() int64 {
	return b.inner.Size()
}

func (b *rateLimitedBlob) Close() error {
	return b.inner.Close()
}

type rateLimitedReader struct {
	ctx     context.Context
	inner   io.ReadCloser
	limiter *rate.Limiter
}

// Read reads at most one burst and waits for the bytes actually read.
func (r *rateLimitedReader) Read(p []byte) (int, error) {
	if r.limiter.Limit() != rate.Inf && len(p) > r.limiter.Burst() {
		p = p[:r.limiter.Burst()]
	}
	n, err := r.inner.Read(p)
	if n > 0 {
		if werr := waitBytes(r.ctx, r.limiter, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *rateLimitedReader) Close() error {
	return r.inner.Close()
}

// waitBytes blocks until n bytes may pass, in chunks of at most one burst.
func waitBytes(ctx context.Context, l *rate.Limiter, n int) error {
	if l.Limit() == rate.Inf {
		return ctx.Err()
	}
	for n > 0 {
		chunk := min(n, l.Burst())
		if err := l.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
