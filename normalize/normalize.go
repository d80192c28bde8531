// Package normalize funnels every supported input, literal or file, into a
// validated numeric array.
package normalize

import (
	"context"

	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/source"
)

// FileLoader reads a tabular file into an array. *loader.Loader satisfies it.
type FileLoader interface {
	Load(ctx context.Context, path string) (*numeric.Array, error)
}

// Normalizer routes sources to the file loader or to numeric coercion.
type Normalizer struct {
	files FileLoader
}

// New returns a Normalizer that reads paths with files.
func New(files FileLoader) *Normalizer {
	return &Normalizer{files: files}
}

// Normalize turns src into an array. Paths go to the file loader; scalars,
// sequences and arrays go through numeric.Coerce. Any other source is
// ErrParseFailure.
func (n *Normalizer) Normalize(ctx context.Context, src source.Source) (*numeric.Array, error) {
	switch s := src.(type) {
	case source.Path:
		if n.files == nil {
			return nil, errs.Errorf(errs.ErrParseFailure, "no file loader configured for %q", string(s))
		}
		return n.files.Load(ctx, string(s))
	case source.Scalar:
		return numeric.Coerce(s.Value)
	case source.Sequence:
		return numeric.Coerce(s.Values)
	case source.NestedSequence:
		return numeric.Coerce(s.Rows)
	case source.Array:
		return numeric.Coerce(s.Array)
	default:
		return nil, errs.Errorf(errs.ErrParseFailure, "unsupported input type: %T", src)
	}
}
