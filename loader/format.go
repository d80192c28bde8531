package loader

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hupe1980/vecdist/internal/errs"
)

// FileKind is the tabular format of a source file.
type FileKind int

const (
	KindCSV FileKind = iota
	KindSpreadsheet
	KindText
)

func (k FileKind) String() string {
	switch k {
	case KindCSV:
		return "csv"
	case KindSpreadsheet:
		return "spreadsheet"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("FileKind(%d)", int(k))
	}
}

// Compression is the stream compression wrapped around a source file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
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
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Format describes how a source file is decoded.
type Format struct {
	Kind        FileKind
	Ext         string // lower-case table extension, e.g. ".xlsx"
	Compression Compression
}

var kindByExt = map[string]FileKind{
	".csv":  KindCSV,
	".xlsx": KindSpreadsheet,
	".xls":  KindSpreadsheet,
	".txt":  KindText,
}

var compressionByExt = map[string]Compression{
	".gz":  CompressionGzip,
	".zst": CompressionZstd,
	".lz4": CompressionLZ4,
}

// SupportedExtensions lists the table extensions the loader accepts.
var SupportedExtensions = []string{".csv", ".txt", ".xls", ".xlsx"}

// DetectFormat derives the format from the extension of p. At most one
// compression suffix is stripped before the table extension is checked.
func DetectFormat(p string) (Format, error) {
	name := path.Base(filepath.ToSlash(p))

	var f Format
	ext := strings.ToLower(path.Ext(name))
	if c, ok := compressionByExt[ext]; ok {
		f.Compression = c
		name = strings.TrimSuffix(name, path.Ext(name))
		ext = strings.ToLower(path.Ext(name))
	}

	kind, ok := kindByExt[ext]
	if !ok {
		return Format{}, errs.NewFileError(errs.ErrUnsupportedFormat, p,
			fmt.Errorf("unsupported file format: %q, supported formats: %s", ext, strings.Join(SupportedExtensions, ", ")))
	}
	f.Kind = kind
	f.Ext = ext
	return f, nil
}
