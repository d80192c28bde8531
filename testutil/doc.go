// Package testutil provides testing utilities for vecdist.
//
// This package is intended for use in tests only. It provides helpers for
// generating deterministic random points and arrays, a strategy wrapper that
// counts invocations, brute-force reference distances, and file fixtures.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.UniformVectors(10, 3)   // [][]float64 in [0, 1)
//	arr := rng.UniformArray(10, 3)      // *numeric.Array
//
// # Ground Truth
//
//	want := testutil.BruteForcePairwise(rows, distance.Euclidean)
//
// # Counting
//
//	cs := testutil.NewCountingStrategy(distance.Euclidean)
//	_ = cs.Distance(a, b)
//	cs.Count() // 1
package testutil
