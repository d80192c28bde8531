// Package distance provides the pluggable distance strategies used by the
// dispatcher.
//
// A Strategy compares two equal-length vectors and returns a scalar. The
// dispatcher only ever holds a Strategy value, so new metrics need no
// dispatcher changes.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default)
//   - MetricSquaredEuclidean: squared L2 distance
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L-infinity distance
//
// # Usage
//
//	d := distance.Euclidean.Distance(a, b)
//	s, _ := distance.Provider(distance.MetricManhattan)
package distance
