// Package classify decides which kind of distance computation two inputs
// request, based only on their normalized shapes.
package classify

import (
	"context"
	"fmt"

	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/source"
)

// CalcType is the kind of distance computation requested.
type CalcType int

const (
	// Pairwise compares every unordered pair of vectors within one array.
	Pairwise CalcType = iota
	// PointToPoint compares two points of equal shape.
	PointToPoint
	// PointToArray compares one point against every vector of an array.
	PointToArray
	// ArrayToArray compares two equally shaped arrays vector by vector.
	ArrayToArray
	// Mixed is the flatten-and-truncate fallback for any other shape pair.
	Mixed
)

func (c CalcType) String() string {
	switch c {
	case Pairwise:
		return "pairwise"
	case PointToPoint:
		return "point_to_point"
	case PointToArray:
		return "point_to_array"
	case ArrayToArray:
		return "array_to_array"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("CalcType(%d)", int(c))
	}
}

// Classified holds the operands in dispatch order and their calculation type.
// For PointToArray, A is always the point and B the array.
type Classified struct {
	A, B *numeric.Array
	Type CalcType
}

// Normalizer turns a source into an array. *normalize.Normalizer satisfies it.
type Normalizer interface {
	Normalize(ctx context.Context, src source.Source) (*numeric.Array, error)
}

// Classify normalizes x and, if present, y, then classifies the pair.
// A nil y requests pairwise distances within x.
func Classify(ctx context.Context, n Normalizer, x, y source.Source) (Classified, error) {
	a, err := n.Normalize(ctx, x)
	if err != nil {
		return Classified{}, err
	}
	if y == nil {
		return Classified{A: a, B: a, Type: Pairwise}, nil
	}
	b, err := n.Normalize(ctx, y)
	if err != nil {
		return Classified{}, err
	}
	return Arrays(a, b), nil
}

// Arrays classifies two already-normalized arrays. A nil b means pairwise.
func Arrays(a, b *numeric.Array) Classified {
	if b == nil {
		return Classified{A: a, B: a, Type: Pairwise}
	}

	ra, rb := a.Rank(), b.Rank()
	switch {
	case a.Shape().Equal(b.Shape()) && ra == 1:
		return Classified{A: a, B: b, Type: PointToPoint}
	case a.Shape().Equal(b.Shape()) && ra == 2:
		return Classified{A: a, B: b, Type: ArrayToArray}
	case ra == 1 && rb == 2:
		return Classified{A: a, B: b, Type: PointToArray}
	case ra == 2 && rb == 1:
		// Canonical order: the point always comes first.
		return Classified{A: b, B: a, Type: PointToArray}
	default:
		return Classified{A: a, B: b, Type: Mixed}
	}
}
