package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Single", []float64{2}, []float64{-1}, 3},
		{"Rows", []float64{1, 2}, []float64{5, 6}, 5.656854},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean.Distance(tt.a, tt.b), 1e-6)
		})
	}
}

func TestOtherMetrics(t *testing.T) {
	a := []float64{1, -1, 4}
	b := []float64{-1, 1, 1}

	assert.Equal(t, 17.0, SquaredEuclidean.Distance(a, b))
	assert.Equal(t, 7.0, Manhattan.Distance(a, b))
	assert.Equal(t, 3.0, Chebyshev.Distance(a, b))
}

func TestStrategyProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean, MetricManhattan, MetricChebyshev} {
		t.Run(m.String(), func(t *testing.T) {
			s, err := Provider(m)
			require.NoError(t, err)

			for range 50 {
				u := make([]float64, 8)
				v := make([]float64, 8)
				for i := range u {
					u[i] = rng.NormFloat64()
					v[i] = rng.NormFloat64()
				}
				assert.Equal(t, s.Distance(u, v), s.Distance(v, u), "symmetry")
				assert.Equal(t, 0.0, s.Distance(u, u), "identity")
				assert.GreaterOrEqual(t, s.Distance(u, v), 0.0)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean, MetricManhattan, MetricChebyshev} {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMetric("L1")
	require.NoError(t, err)
	assert.Equal(t, MetricManhattan, got)

	_, err = ParseMetric("cosine")
	assert.Error(t, err)

	_, err = Provider(Metric(99))
	assert.Error(t, err)
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}

func TestFuncAdapter(t *testing.T) {
	calls := 0
	s := Func(func(a, b []float64) float64 {
		calls++
		return float64(len(a) + len(b))
	})
	assert.Equal(t, 4.0, s.Distance([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 1, calls)
}
