package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecdist/classify"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/numeric"
)

// ResultKind tells which field of a Result carries the value.
type ResultKind int

const (
	// ResultScalar is a single distance.
	ResultScalar ResultKind = iota
	// ResultVector is one distance per lane.
	ResultVector
	// ResultMatrix is an n x n pairwise matrix.
	ResultMatrix
)

func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultVector:
		return "vector"
	case ResultMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of a dispatch.
type Result struct {
	Kind ResultKind
	Type classify.CalcType

	Scalar float64
	Vector []float64
	Matrix [][]float64

	// Invocations is the number of strategy calls made.
	Invocations int
}

// Value returns the populated field as float64, []float64 or [][]float64.
func (r *Result) Value() any {
	switch r.Kind {
	case ResultVector:
		return r.Vector
	case ResultMatrix:
		return r.Matrix
	default:
		return r.Scalar
	}
}

type options struct {
	parallelism int
	observer    func(invocations int)
}

// Option configures a single dispatch.
type Option func(*options)

// WithParallelism bounds the goroutines used for pairwise rows.
// Values below 1 mean sequential.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithObserver registers a callback that receives the strategy invocation
// count after a successful dispatch.
func WithObserver(fn func(invocations int)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// counter wraps a strategy and counts its invocations.
type counter struct {
	strategy distance.Strategy
	n        atomic.Int64
}

func (c *counter) Distance(a, b []float64) float64 {
	c.n.Add(1)
	return c.strategy.Distance(a, b)
}

// Dispatch computes distances for c along axis with strategy.
func Dispatch(ctx context.Context, c classify.Classified, axis numeric.Axis, strategy distance.Strategy, opts ...Option) (*Result, error) {
	o := options{parallelism: 1}
	for _, fn := range opts {
		fn(&o)
	}

	if strategy == nil {
		return nil, errs.Errorf(errs.ErrInvalidInput, "nil distance strategy")
	}
	if c.A == nil {
		return nil, errs.Errorf(errs.ErrInvalidInput, "missing operand")
	}
	if axis != numeric.AxisRows && axis != numeric.AxisColumns {
		return nil, errs.Errorf(errs.ErrInvalidInput, "invalid axis %s", axis)
	}

	cnt := &counter{strategy: strategy}

	var (
		res *Result
		err error
	)

	switch c.Type {
	case classify.PointToPoint:
		res, err = pointToPoint(c.A, c.B, cnt)
	case classify.PointToArray:
		res, err = pointToArray(ctx, c.A, c.B, axis, cnt)
	case classify.ArrayToArray:
		res, err = arrayToArray(ctx, c.A, c.B, axis, cnt)
	case classify.Pairwise:
		res, err = pairwise(ctx, c.A, axis, cnt, o.parallelism)
	case classify.Mixed:
		res, err = mixed(c.A, c.B, cnt)
	default:
		return nil, errs.Errorf(errs.ErrInvalidInput, "unknown calculation type %s", c.Type)
	}

	if err != nil {
		return nil, err
	}

	res.Type = c.Type
	res.Invocations = int(cnt.n.Load())

	if o.observer != nil {
		o.observer(res.Invocations)
	}

	return res, nil
}

func pointToPoint(a, b *numeric.Array, s distance.Strategy) (*Result, error) {
	if b == nil || !a.Shape().Equal(b.Shape()) {
		return nil, shapeError(errs.ErrDimensionMismatch, "point_to_point", a, b)
	}
	return &Result{Kind: ResultScalar, Scalar: s.Distance(a.Values(), b.Values())}, nil
}

func pointToArray(ctx context.Context, point, arr *numeric.Array, axis numeric.Axis, s distance.Strategy) (*Result, error) {
	if arr == nil || point.Size() != arr.LaneLen(axis) {
		return nil, shapeError(errs.ErrDimensionMismatch, "point_to_array", point, arr)
	}

	p := point.Values()
	out := make([]float64, arr.Lanes(axis))
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = s.Distance(p, arr.Lane(axis, i))
	}

	return &Result{Kind: ResultVector, Vector: out}, nil
}

func arrayToArray(ctx context.Context, a, b *numeric.Array, axis numeric.Axis, s distance.Strategy) (*Result, error) {
	if b == nil || a.Lanes(axis) != b.Lanes(axis) || a.LaneLen(axis) != b.LaneLen(axis) {
		return nil, shapeError(errs.ErrDimensionMismatch, "array_to_array", a, b)
	}

	out := make([]float64, a.Lanes(axis))
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = s.Distance(a.Lane(axis, i), b.Lane(axis, i))
	}

	return &Result{Kind: ResultVector, Vector: out}, nil
}

func pairwise(ctx context.Context, a *numeric.Array, axis numeric.Axis, s distance.Strategy, parallelism int) (*Result, error) {
	// A rank-1 operand has a single column, so comparing its columns would
	// only ever yield [[0]].
	if a.Rank() == 1 && axis == numeric.AxisColumns {
		return nil, shapeError(errs.ErrDimensionMismatch, "pairwise", a, nil)
	}

	n := a.Lanes(axis)
	if n == 0 {
		return nil, shapeError(errs.ErrDimensionMismatch, "pairwise", a, nil)
	}

	lanes := make([][]float64, n)
	for i := range lanes {
		lanes[i] = a.Lane(axis, i)
	}

	m := make([][]float64, n)
	cells := make([]float64, n*n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	// Row i owns cells (i, j) and (j, i) for every j > i, so rows can be
	// filled concurrently without sharing a cell.
	fill := func(i int) {
		for j := i + 1; j < n; j++ {
			d := s.Distance(lanes[i], lanes[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	if parallelism <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fill(i)
		}
		return &Result{Kind: ResultMatrix, Matrix: m}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fill(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx only on error; a cancelled parent still has to
	// fail the whole call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{Kind: ResultMatrix, Matrix: m}, nil
}

func mixed(a, b *numeric.Array, s distance.Strategy) (*Result, error) {
	if b == nil || a.Size() == 0 || b.Size() == 0 {
		return nil, shapeError(errs.ErrIncompatibleShapes, "mixed", a, b)
	}

	fa, fb := a.Values(), b.Values()
	n := min(len(fa), len(fb))

	return &Result{Kind: ResultScalar, Scalar: s.Distance(fa[:n], fb[:n])}, nil
}

func shapeError(kind error, op string, a, b *numeric.Array) error {
	return &errs.ShapeError{Kind: kind, Op: op, A: shapeOf(a), B: shapeOf(b)}
}

func shapeOf(a *numeric.Array) []int {
	if a == nil {
		return nil
	}
	return a.Shape()
}
