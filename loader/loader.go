package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/vecdist/blobstore"
	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/internal/fs"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/resource"
)

const defaultReadChunk = 1 << 20

// Loader reads tabular sources into numeric arrays.
// A Loader is safe for concurrent use once constructed.
type Loader struct {
	logger    *slog.Logger
	resources *resource.Controller
	fsys      blobstore.FileSystem
	local     blobstore.BlobStore
	stores    map[string]blobstore.BlobStore
	readChunk int
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. Loads are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithResourceController bounds memory held by loads and paces remote reads.
func WithResourceController(rc *resource.Controller) Option {
	return func(ld *Loader) {
		ld.resources = rc
	}
}

// WithBlobStore routes paths starting with prefix + "/" to store. The
// remainder of the path is the blob name, e.g. prefix "s3://bucket" maps
// "s3://bucket/dir/a.csv" to "dir/a.csv".
func WithBlobStore(prefix string, store blobstore.BlobStore) Option {
	return func(ld *Loader) {
		ld.stores[strings.TrimSuffix(prefix, "/")] = store
	}
}

// WithFileSystem replaces the file system used for local paths.
func WithFileSystem(fsys blobstore.FileSystem) Option {
	return func(ld *Loader) {
		if fsys != nil {
			ld.fsys = fsys
			ld.local = blobstore.NewLocalStoreFS("", fsys)
		}
	}
}

// WithReadChunkSize sets the size of individual blob reads.
func WithReadChunkSize(n int) Option {
	return func(ld *Loader) {
		if n > 0 {
			ld.readChunk = n
		}
	}
}

// New creates a Loader.
func New(optFns ...Option) *Loader {
	l := &Loader{
		logger:    slog.New(slog.DiscardHandler),
		fsys:      fs.Default,
		local:     blobstore.NewLocalStore(""),
		stores:    make(map[string]blobstore.BlobStore),
		readChunk: defaultReadChunk,
	}
	for _, fn := range optFns {
		fn(l)
	}
	return l
}

// Load reads the file at path into a rank-2 array.
//
// Missing paths and non-regular files are ErrInvalidInput; unknown
// extensions and read failures are ErrUnsupportedFormat; content that
// yields no complete numeric rectangle is ErrParseFailure.
func (l *Loader) Load(ctx context.Context, path string) (*numeric.Array, error) {
	store, name, err := l.route(path)
	if err != nil {
		return nil, err
	}

	if store == l.local {
		info, err := l.fsys.Stat(path)
		if err != nil {
			return nil, errs.NewFileError(errs.ErrInvalidInput, path, fmt.Errorf("file not found: %w", err))
		}
		if !info.Mode().IsRegular() {
			return nil, errs.NewFileError(errs.ErrInvalidInput, path, errors.New("path is not a file"))
		}
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	raw, err := l.read(ctx, store, name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, errs.NewFileError(errs.ErrInvalidInput, path, fmt.Errorf("file not found: %w", err))
		}
		return nil, errs.NewFileError(errs.ErrUnsupportedFormat, path, err)
	}
	defer l.resources.ReleaseMemory(int64(len(raw)))

	data := raw
	if format.Compression != CompressionNone {
		data, err = decompress(format.Compression, raw, l.resources.MemoryRemaining())
		if err != nil {
			return nil, errs.NewFileError(errs.ErrUnsupportedFormat, path, fmt.Errorf("%s: %w", format.Compression, err))
		}
		if err := l.resources.ReserveMemory(int64(len(data))); err != nil {
			return nil, errs.NewFileError(errs.ErrUnsupportedFormat, path, err)
		}
		defer l.resources.ReleaseMemory(int64(len(data)))
	}

	arr, detail, err := parse(format, data)
	if err != nil {
		if isParseError(err) {
			return nil, errs.NewFileError(errs.ErrParseFailure, path, err)
		}
		return nil, errs.NewFileError(errs.ErrUnsupportedFormat, path, err)
	}

	l.logger.DebugContext(ctx, "source loaded",
		"path", path,
		"kind", format.Kind.String(),
		"compression", format.Compression.String(),
		"rows", arr.Rows(),
		"cols", arr.Cols(),
		"detail", detail,
	)
	return arr, nil
}

func parse(format Format, data []byte) (*numeric.Array, string, error) {
	switch format.Kind {
	case KindCSV:
		arr, header, err := parseCSV(data)
		if header {
			return arr, "header", err
		}
		return arr, "no header", err
	case KindSpreadsheet:
		arr, err := parseSpreadsheet(data, format.Ext)
		return arr, format.Ext, err
	case KindText:
		arr, delim, err := parseText(data)
		return arr, "delimiter=" + delim, err
	default:
		return nil, "", fmt.Errorf("unknown file kind %v", format.Kind)
	}
}

// route picks the blob store for path. Paths without a scheme are local.
func (l *Loader) route(path string) (blobstore.BlobStore, string, error) {
	if !strings.Contains(path, "://") {
		return l.local, path, nil
	}
	best := ""
	for prefix := range l.stores {
		if strings.HasPrefix(path, prefix+"/") && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return nil, "", errs.NewFileError(errs.ErrInvalidInput, path, errors.New("no blob store registered for this location"))
	}
	return l.stores[best], strings.TrimPrefix(path, best+"/"), nil
}

// read returns the full blob content with its size reserved against the
// memory budget. The caller releases the reservation.
func (l *Loader) read(ctx context.Context, store blobstore.BlobStore, name string) ([]byte, error) {
	if f, ok := store.(blobstore.Fetcher); ok && !l.paced(store) {
		data, err := f.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := l.resources.ReserveMemory(int64(len(data))); err != nil {
			return nil, err
		}
		return data, nil
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	if err := l.resources.ReserveMemory(blob.Size()); err != nil {
		return nil, err
	}

	var pace func(context.Context, int) error
	if l.paced(store) {
		pace = l.resources.AcquireIO
	}
	data, err := blobstore.ReadAll(ctx, blob, l.readChunk, pace)
	if err != nil {
		l.resources.ReleaseMemory(blob.Size())
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("short read: %w", err)
		}
		return nil, err
	}
	return data, nil
}

// paced reports whether reads from store are throttled. Local files never are.
func (l *Loader) paced(store blobstore.BlobStore) bool {
	return l.resources != nil && store != l.local
}
