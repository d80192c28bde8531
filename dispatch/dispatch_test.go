package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecdist/classify"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/testutil"
)

func arr(t *testing.T, v any) *numeric.Array {
	t.Helper()
	a, err := numeric.Coerce(v)
	require.NoError(t, err)
	return a
}

func TestDispatchScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("PointToPoint", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{0, 0}), arr(t, []float64{3, 4}))
		res, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, ResultScalar, res.Kind)
		assert.Equal(t, classify.PointToPoint, res.Type)
		assert.InDelta(t, 5.0, res.Scalar, 1e-12)
		assert.Equal(t, 1, res.Invocations)
	})

	t.Run("Pairwise", func(t *testing.T) {
		c := classify.Arrays(arr(t, [][]float64{{0, 0}, {3, 4}, {6, 8}}), nil)
		res, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, ResultMatrix, res.Kind)
		assert.Equal(t, [][]float64{{0, 5, 10}, {5, 0, 5}, {10, 5, 0}}, res.Matrix)
	})

	t.Run("PointToArray", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{0, 0}), arr(t, [][]float64{{3, 4}, {6, 8}, {0, 0}}))
		res, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, ResultVector, res.Kind)
		assert.Equal(t, []float64{5, 10, 0}, res.Vector)
	})

	t.Run("ArrayToArray", func(t *testing.T) {
		c := classify.Arrays(arr(t, [][]float64{{1, 2}, {3, 4}}), arr(t, [][]float64{{5, 6}, {7, 8}}))
		res, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		require.NoError(t, err)
		require.Len(t, res.Vector, 2)
		assert.InDelta(t, 5.656854, res.Vector[0], 1e-6)
		assert.InDelta(t, 5.656854, res.Vector[1], 1e-6)
	})

	t.Run("Mixed", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{0, 0, 9}), arr(t, []float64{3, 4}))
		require.Equal(t, classify.Mixed, c.Type)
		res, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		require.NoError(t, err)
		assert.Equal(t, ResultScalar, res.Kind)
		assert.InDelta(t, 5.0, res.Scalar, 1e-12)
	})
}

func TestDispatchColumns(t *testing.T) {
	ctx := context.Background()
	m := arr(t, [][]float64{{0, 3}, {0, 4}})

	res, err := Dispatch(ctx, classify.Arrays(m, nil), numeric.AxisColumns, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 5}, {5, 0}}, res.Matrix)

	res, err = Dispatch(ctx, classify.Arrays(arr(t, []float64{0, 0}), m), numeric.AxisColumns, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, res.Vector)

	other := arr(t, [][]float64{{0, 0}, {0, 0}})
	res, err = Dispatch(ctx, classify.Arrays(m, other), numeric.AxisColumns, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, res.Vector)
}

func TestDispatchPairwiseInvariants(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	for _, parallelism := range []int{1, 4} {
		points := rng.UniformVectors(17, 5)
		a := arr(t, points)
		cs := testutil.NewCountingStrategy(distance.Euclidean)

		var observed int
		res, err := Dispatch(ctx, classify.Arrays(a, nil), numeric.AxisRows, cs,
			WithParallelism(parallelism),
			WithObserver(func(n int) { observed = n }),
		)
		require.NoError(t, err)

		n := len(points)
		assert.Equal(t, n*(n-1)/2, cs.Count(), "parallelism %d", parallelism)
		assert.Equal(t, cs.Count(), res.Invocations)
		assert.Equal(t, res.Invocations, observed)

		want := testutil.BruteForcePairwise(points, distance.Euclidean)
		for i := range n {
			assert.Zero(t, res.Matrix[i][i])
			for j := range n {
				assert.Equal(t, res.Matrix[i][j], res.Matrix[j][i])
				assert.InDelta(t, want[i][j], res.Matrix[i][j], 1e-12)
			}
		}
	}
}

func TestDispatchPairwiseRankOne(t *testing.T) {
	res, err := Dispatch(context.Background(), classify.Arrays(arr(t, []float64{1, 4, 6}), nil), numeric.AxisRows, distance.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 3, 5}, {3, 0, 2}, {5, 2, 0}}, res.Matrix)
}

func TestDispatchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("PointToArrayLaneLength", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{0, 0, 0}), arr(t, [][]float64{{3, 4}, {6, 8}}))
		_, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		assert.ErrorIs(t, err, errs.ErrDimensionMismatch)

		var se *errs.ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, []int{3}, se.A)
		assert.Equal(t, []int{2, 2}, se.B)
	})

	t.Run("PointToPointShapes", func(t *testing.T) {
		c := classify.Classified{A: arr(t, []float64{0}), B: arr(t, []float64{0, 1}), Type: classify.PointToPoint}
		_, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		assert.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("ArrayToArrayShapes", func(t *testing.T) {
		c := classify.Classified{A: arr(t, [][]float64{{0, 1}}), B: arr(t, [][]float64{{0, 1}, {2, 3}}), Type: classify.ArrayToArray}
		_, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		assert.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})

	t.Run("PairwiseRankOneColumns", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{1, 4, 6}), nil)
		_, err := Dispatch(ctx, c, numeric.AxisColumns, distance.Euclidean)
		assert.ErrorIs(t, err, errs.ErrDimensionMismatch)

		var se *errs.ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "pairwise", se.Op)
		assert.Equal(t, []int{3}, se.A)
	})

	t.Run("MixedEmpty", func(t *testing.T) {
		c := classify.Classified{A: arr(t, []float64{1}), B: &numeric.Array{}, Type: classify.Mixed}
		_, err := Dispatch(ctx, c, numeric.AxisRows, distance.Euclidean)
		assert.ErrorIs(t, err, errs.ErrIncompatibleShapes)
	})

	t.Run("NilStrategy", func(t *testing.T) {
		c := classify.Arrays(arr(t, []float64{0}), arr(t, []float64{1}))
		_, err := Dispatch(ctx, c, numeric.AxisRows, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		c := classify.Arrays(arr(t, [][]float64{{0, 0}, {1, 1}}), nil)
		for _, p := range []int{1, 2} {
			res, err := Dispatch(cctx, c, numeric.AxisRows, distance.Euclidean, WithParallelism(p))
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, res)
		}
	})
}

func TestResultValue(t *testing.T) {
	assert.Equal(t, 1.5, (&Result{Kind: ResultScalar, Scalar: 1.5}).Value())
	assert.Equal(t, []float64{1}, (&Result{Kind: ResultVector, Vector: []float64{1}}).Value())
	assert.Equal(t, "matrix", ResultMatrix.String())
}
