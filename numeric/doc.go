// Package numeric provides the validated rank-1/rank-2 float64 array that
// flows through classification and dispatch, and the coercion of raw Go
// values into it.
//
// An Array is immutable by convention: constructors copy their input and
// reject empty, ragged, NaN or infinite data, so every Array reaching the
// dispatcher holds at least one finite element.
//
// # Usage
//
//	p, _ := numeric.Coerce([]float64{0, 0})
//	m, _ := numeric.Coerce([][]float64{{3, 4}, {6, 8}})
//	m.Lane(numeric.AxisRows, 1) // [6 8]
package numeric
