package loader

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/vecdist/resource"
)

// decompress inflates data. A non-negative limit caps the output size;
// exceeding it stops the read and returns resource.ErrMemoryLimitExceeded.
func decompress(c Compression, data []byte, limit int64) ([]byte, error) {
	var r io.Reader
	switch c {
	case CompressionGzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = gr.Close() }()
		r = gr
	case CompressionZstd:
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	case CompressionLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}

	if limit < 0 {
		return io.ReadAll(r)
	}

	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, resource.ErrMemoryLimitExceeded
	}
	return out, nil
}
