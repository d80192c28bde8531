package distance

import (
	"fmt"
	"math"
	"strings"
)

// Strategy computes the distance between two vectors of equal length.
// Implementations must be stateless and safe for concurrent use.
type Strategy interface {
	Distance(a, b []float64) float64
}

// Func adapts a plain function to the Strategy interface.
type Func func(a, b []float64) float64

// Distance calls f(a, b).
func (f Func) Distance(a, b []float64) float64 { return f(a, b) }

var (
	// Euclidean is sqrt(sum((a_i - b_i)^2)).
	Euclidean Strategy = Func(euclidean)
	// SquaredEuclidean is sum((a_i - b_i)^2).
	SquaredEuclidean Strategy = Func(squaredEuclidean)
	// Manhattan is sum(|a_i - b_i|).
	Manhattan Strategy = Func(manhattan)
	// Chebyshev is max(|a_i - b_i|).
	Chebyshev Strategy = Func(chebyshev)
)

// Assumes vectors are the same length (caller's responsibility).
func squaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func euclidean(a, b []float64) float64 {
	return math.Sqrt(squaredEuclidean(a, b))
}

func manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

func chebyshev(a, b []float64) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}
	return m
}

// Metric names a built-in strategy.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricSquaredEuclidean:
		return "sqeuclidean"
	case MetricManhattan:
		return "manhattan"
	case MetricChebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric parses a metric name as printed by Metric.String.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "sqeuclidean", "squared_euclidean", "sql2":
		return MetricSquaredEuclidean, nil
	case "manhattan", "cityblock", "l1":
		return MetricManhattan, nil
	case "chebyshev", "linf":
		return MetricChebyshev, nil
	default:
		return 0, fmt.Errorf("unsupported metric: %q", s)
	}
}

// Provider returns the strategy for the given metric.
func Provider(m Metric) (Strategy, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
