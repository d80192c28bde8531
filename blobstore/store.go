package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for reading immutable source blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Fetcher is an optional interface for stores that download whole blobs natively.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ReadAll reads the full content of b in chunks of at most chunk bytes,
// calling pace before each chunk. pace may be nil.
func ReadAll(ctx context.Context, b Blob, chunk int, pace func(ctx context.Context, n int) error) ([]byte, error) {
	size := b.Size()
	if chunk <= 0 {
		chunk = 1 << 20
	}
	buf := make([]byte, size)
	for off := int64(0); off < size; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(off+int64(chunk), size)
		if pace != nil {
			if err := pace(ctx, int(end-off)); err != nil {
				return nil, err
			}
		}
		n, err := b.ReadAt(ctx, buf[off:end], off)
		off += int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) && off == size {
				break
			}
			return nil, err
		}
		if n == 0 {
			return nil, io.ErrUnexpectedEOF
		}
	}
	return buf, nil
}
