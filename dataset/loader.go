package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/cindex/blobstore"
	"golang.org/x/sync/errgroup"
)

// ErrCountMismatch indicates a label file whose length differs from the
// number of vectors.
type ErrCountMismatch struct {
	Vectors int
	Labels  int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("dataset: %d vectors but %d labels", e.Vectors, e.Labels)
}

// Files names the blobs of a benchmark dataset. Labels and Codebook are
// optional.
type Files struct {
	Vectors  string
	Labels   string
	Codebook string
}

// Set is a loaded dataset.
type Set struct {
	Vectors  [][]float64
	Labels   []int
	Codebook [][]float64
}

// Dim returns the dimensionality of the vectors, or 0 for an empty set.
func (s *Set) Dim() int {
	if len(s.Vectors) == 0 {
		return 0
	}
	return len(s.Vectors[0])
}

// Loader reads dataset files from a blob store. Compressed files are
// decoded transparently based on their extension.
type Loader struct {
	Store blobstore.BlobStore
}

// NewLoader creates a loader for the given store.
func NewLoader(store blobstore.BlobStore) *Loader {
	return &Loader{Store: store}
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for i := len(m) - 1; i >= 0; i-- {
		errs = append(errs, m[i].Close())
	}
	return errors.Join(errs...)
}

type readCloser struct {
	io.Reader
	io.Closer
}

func (l *Loader) open(ctx context.Context, name string) (io.ReadCloser, error) {
	b, err := l.Store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	raw, err := blobstore.NewReader(ctx, b)
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	dec, err := Decompress(name, raw)
	if err != nil {
		_ = raw.Close()
		_ = b.Close()
		return nil, fmt.Errorf("decompress %s: %w", name, err)
	}

	return readCloser{Reader: dec, Closer: multiCloser{b, raw, dec}}, nil
}

// Vectors reads a vector file.
func (l *Loader) Vectors(ctx context.Context, name string) ([][]float64, error) {
	r, err := l.open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	v, err := ReadVectors(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// Labels reads a label (partition) file.
func (l *Loader) Labels(ctx context.Context, name string) ([]int, error) {
	r, err := l.open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	labels, err := ReadLabels(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return labels, nil
}

// Codebook reads a codebook file: one prototype per line, same format as
// vector files.
func (l *Loader) Codebook(ctx context.Context, name string) ([][]float64, error) {
	return l.Vectors(ctx, name)
}

// Load reads the named files concurrently and checks that the label count
// matches the vector count.
func (l *Loader) Load(ctx context.Context, files Files) (*Set, error) {
	set := &Set{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := l.Vectors(gctx, files.Vectors)
		set.Vectors = v
		return err
	})
	if files.Labels != "" {
		g.Go(func() error {
			labels, err := l.Labels(gctx, files.Labels)
			set.Labels = labels
			return err
		})
	}
	if files.Codebook != "" {
		g.Go(func() error {
			cb, err := l.Codebook(gctx, files.Codebook)
			set.Codebook = cb
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if files.Labels != "" && len(set.Labels) != len(set.Vectors) {
		return nil, &ErrCountMismatch{Vectors: len(set.Vectors), Labels: len(set.Labels)}
	}
	return set, nil
}

// SaveLabels writes labels to the store, compressed according to the
// extension of name.
func (l *Loader) SaveLabels(ctx context.Context, name string, labels []int) error {
	return l.save(ctx, name, func(w io.Writer) error { return WriteLabels(w, labels) })
}

// SaveVectors writes vectors (or a codebook) to the store, compressed
// according to the extension of name.
func (l *Loader) SaveVectors(ctx context.Context, name string, vectors [][]float64) error {
	return l.save(ctx, name, func(w io.Writer) error { return WriteVectors(w, vectors) })
}

func (l *Loader) save(ctx context.Context, name string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	enc, err := Compress(name, &buf)
	if err != nil {
		return err
	}
	if err := write(enc); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return l.Store.Put(ctx, name, buf.Bytes())
}
