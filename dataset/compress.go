package dataset

import (
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec of a dataset file.
type Compression int

const (
	// CompressionNone is plain text.
	CompressionNone Compression = iota
	// CompressionGzip is gzip (".gz").
	CompressionGzip
	// CompressionZstd is Zstandard (".zst", ".zstd").
	CompressionZstd
	// CompressionLZ4 is the LZ4 frame format (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// DetectCompression infers the codec from the file extension.
func DetectCompression(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress wraps r with a decoder chosen by the extension of name.
// Names without a known compression extension pass through unchanged.
// Closing the returned reader does not close r.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch DetectCompression(name) {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Compress wraps w with an encoder chosen by the extension of name.
// The returned writer must be closed to flush the encoder; closing it
// does not close w.
func Compress(name string, w io.Writer) (io.WriteCloser, error) {
	switch DetectCompression(name) {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
