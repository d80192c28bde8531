package testutil

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/numeric"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates num points of length dim with values in [0, 1).
// All points share one backing array.
func (r *RNG) UniformVectors(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVectors generates num points of length dim drawn from a standard
// normal distribution.
func (r *RNG) GaussianVectors(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range num {
		vec := make([]float64, dim)
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates points scattered around `clusters` random
// centroids in [-1, 1). spread scales the Gaussian noise.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([][]float64, clusters)
	for c := range centroids {
		centroids[c] = make([]float64, dim)
		for j := range dim {
			centroids[c][j] = r.rand.Float64()*2 - 1
		}
	}

	vectors := make([][]float64, num)
	for i := range num {
		centroid := centroids[i%clusters]
		vec := make([]float64, dim)
		for j := range dim {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// UniformArray returns a rows x cols array with values in [0, 1).
// It panics if rows or cols is not positive.
func (r *RNG) UniformArray(rows, cols int) *numeric.Array {
	arr, err := numeric.NewMatrix(r.UniformVectors(rows, cols))
	if err != nil {
		panic(err)
	}
	return arr
}

// CountingStrategy wraps a distance strategy and counts how often it is
// invoked. It is safe for concurrent use.
type CountingStrategy struct {
	inner distance.Strategy
	calls atomic.Int64
}

// NewCountingStrategy wraps s.
func NewCountingStrategy(s distance.Strategy) *CountingStrategy {
	return &CountingStrategy{inner: s}
}

// Distance implements distance.Strategy.
func (c *CountingStrategy) Distance(a, b []float64) float64 {
	c.calls.Add(1)
	return c.inner.Distance(a, b)
}

// Count returns the number of invocations so far.
func (c *CountingStrategy) Count() int {
	return int(c.calls.Load())
}

// Reset sets the count back to zero.
func (c *CountingStrategy) Reset() {
	c.calls.Store(0)
}

// BruteForcePairwise computes the full n x n distance matrix with a naive
// double loop. Use it as ground truth for the pairwise dispatcher.
func BruteForcePairwise(points [][]float64, s distance.Strategy) [][]float64 {
	out := make([][]float64, len(points))
	for i := range points {
		out[i] = make([]float64, len(points))
		for j := range points {
			out[i][j] = s.Distance(points[i], points[j])
		}
	}
	return out
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(tb testing.TB, name string, content []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		tb.Fatalf("write fixture %s: %v", name, err)
	}

	return path
}
