package vecdist

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecdist/blobstore"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/source"
	"github.com/hupe1980/vecdist/testutil"
)

func TestDistanceScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("PointToPoint", func(t *testing.T) {
		res, err := Distance(ctx, []float64{0, 0}, []float64{3, 4})
		require.NoError(t, err)
		assert.Equal(t, PointToPoint, res.Type)
		assert.InDelta(t, 5.0, res.Scalar, 1e-12)
	})

	t.Run("Pairwise", func(t *testing.T) {
		res, err := Distance(ctx, [][]int{{0, 0}, {3, 4}, {6, 8}}, nil)
		require.NoError(t, err)
		assert.Equal(t, Pairwise, res.Type)
		assert.Equal(t, [][]float64{{0, 5, 10}, {5, 0, 5}, {10, 5, 0}}, res.Matrix)
	})

	t.Run("PointToArray", func(t *testing.T) {
		res, err := Distance(ctx, []float64{0, 0}, [][]float64{{3, 4}, {6, 8}, {0, 0}})
		require.NoError(t, err)
		assert.Equal(t, PointToArray, res.Type)
		assert.Equal(t, []float64{5, 10, 0}, res.Vector)
	})

	t.Run("CSVPointToArray", func(t *testing.T) {
		path := testutil.WriteFile(t, "points.csv", []byte("x,y\n0,0\n3,4\n"))
		res, err := Distance(ctx, path, []float64{0, 0})
		require.NoError(t, err)
		assert.Equal(t, PointToArray, res.Type)
		assert.Equal(t, []float64{0, 5}, res.Vector)
	})

	t.Run("ArrayToArray", func(t *testing.T) {
		res, err := Distance(ctx, [][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}}, WithAxis(AxisRows))
		require.NoError(t, err)
		assert.Equal(t, ArrayToArray, res.Type)
		require.Len(t, res.Vector, 2)
		assert.InDelta(t, 5.656854, res.Vector[0], 1e-6)
		assert.InDelta(t, 5.656854, res.Vector[1], 1e-6)
	})

	t.Run("TabDelimitedText", func(t *testing.T) {
		path := testutil.WriteFile(t, "points.txt", []byte("1\t2\t3\n4\t5\t6\n"))
		res, err := Distance(ctx, path, [][]float64{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		assert.Equal(t, ArrayToArray, res.Type)
		assert.Equal(t, []float64{0, 0}, res.Vector)
	})
}

func TestDistanceOptions(t *testing.T) {
	ctx := context.Background()

	res, err := Distance(ctx, []float64{0, 0}, []float64{3, 4}, WithMetric(distance.MetricManhattan))
	require.NoError(t, err)
	assert.InDelta(t, 7.0, res.Scalar, 1e-12)

	res, err = Distance(ctx, [][]float64{{0, 3}, {0, 4}}, nil, WithAxis(AxisColumns))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 5}, {5, 0}}, res.Matrix)

	cs := testutil.NewCountingStrategy(distance.Euclidean)
	points := testutil.NewRNG(4711).UniformVectors(12, 4)
	res, err = Distance(ctx, points, nil, WithStrategy(cs), WithParallelism(3))
	require.NoError(t, err)
	assert.Equal(t, 12*11/2, cs.Count())
	assert.Equal(t, cs.Count(), res.Invocations)

	_, err = New(WithMetric(distance.Metric(99)))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEuclidean(t *testing.T) {
	res, err := Euclidean(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, PointToPoint, res.Type)
	assert.InDelta(t, 3.0, res.Scalar, 1e-12)
}

func TestDistanceInputs(t *testing.T) {
	ctx := context.Background()

	arr, err := numeric.NewVector([]float64{3, 4})
	require.NoError(t, err)

	res, err := Distance(ctx, source.Sequence{Values: []int{0, 0}}, arr)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Scalar, 1e-12)

	mixed, err := Distance(ctx, []float64{0, 0, 100}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Mixed, mixed.Type)
	assert.InDelta(t, 5.0, mixed.Scalar, 1e-12)
}

func TestDistanceErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		x, y any
		want error
	}{
		{"Empty", []float64{}, nil, ErrInvalidInput},
		{"NaN", []any{1.0, "NaN"}, nil, ErrInvalidInput},
		{"NonNumeric", []string{"a"}, nil, ErrInvalidInput},
		{"Struct", struct{}{}, nil, ErrParseFailure},
		{"MissingFile", "does-not-exist.csv", nil, ErrInvalidInput},
		{"PointLength", []float64{0, 0, 0}, [][]float64{{1, 2}, {3, 4}}, ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Distance(ctx, tt.x, tt.y)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res)
		})
	}

	t.Run("UnsupportedExtension", func(t *testing.T) {
		path := testutil.WriteFile(t, "points.json", []byte("[1,2]"))
		_, err := Distance(ctx, path, nil)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)

		var fe *FileError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, path, fe.Path)
	})

	t.Run("ParseFailure", func(t *testing.T) {
		path := testutil.WriteFile(t, "words.csv", []byte("a,b\nc,d\n"))
		_, err := Distance(ctx, path, nil)
		assert.ErrorIs(t, err, ErrParseFailure)
	})

	t.Run("MemoryLimit", func(t *testing.T) {
		path := testutil.WriteFile(t, "points.csv", []byte("0,0\n3,4\n6,8\n"))
		_, err := Distance(ctx, path, nil, WithMemoryLimit(4))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Distance(cctx, [][]float64{{0, 0}, {1, 1}}, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBlobStoreRouting(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("dir/points.csv", []byte("x,y\n0,0\n3,4\n"))

	calc, err := New(WithBlobStore("mem://bucket/", store), WithIOLimit(1<<20))
	require.NoError(t, err)

	res, err := calc.Distance(context.Background(), "mem://bucket/dir/points.csv", []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 5}, res.Vector)

	_, err = calc.Distance(context.Background(), "mem://bucket/dir/missing.csv", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mc := &BasicMetricsCollector{}

	calc, err := New(WithLogger(logger), WithMetricsCollector(mc))
	require.NoError(t, err)

	path := testutil.WriteFile(t, "points.csv", []byte("0,0\n3,4\n"))
	_, err = calc.Distance(context.Background(), path, nil)
	require.NoError(t, err)
	_, err = calc.Distance(context.Background(), []float64{}, nil)
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.DistanceCount)
	assert.Equal(t, int64(1), stats.DistanceErrors)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.FileLoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(1), stats.Invocations)

	out := buf.String()
	assert.Contains(t, out, `"msg":"source loaded"`)
	assert.Contains(t, out, `"msg":"distance completed"`)
	assert.Contains(t, out, `"calc_type":"pairwise"`)
	assert.Contains(t, out, `"msg":"distance failed"`)
	assert.Contains(t, out, `"metric":"euclidean"`)
	assert.Contains(t, out, `"axis":"rows"`)
}

func TestLoggerCarriesConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		metric string
		axis   string
	}{
		{"Default", nil, `"metric":"euclidean"`, `"axis":"rows"`},
		{"Manhattan", []Option{WithMetric(distance.MetricManhattan)}, `"metric":"manhattan"`, `"axis":"rows"`},
		{"Columns", []Option{WithAxis(AxisColumns)}, `"metric":"euclidean"`, `"axis":"columns"`},
		{"CustomStrategy", []Option{WithStrategy(distance.Func(func(a, b []float64) float64 { return 0 }))}, `"metric":"custom"`, `"axis":"rows"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			calc, err := New(append(tt.opts, WithLogger(logger))...)
			require.NoError(t, err)
			_, err = calc.Distance(context.Background(), []float64{0, 0}, []float64{3, 4})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, `"msg":"distance completed"`)
			assert.Contains(t, out, tt.metric)
			assert.Contains(t, out, tt.axis)
		})
	}
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(context.Canceled), context.Canceled)
	assert.ErrorIs(t, translateError(assert.AnError), ErrInvalidInput)
	assert.ErrorIs(t, translateError(ErrMemoryLimitExceeded), ErrUnsupportedFormat)
}
