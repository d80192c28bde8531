// Package dispatch runs a distance strategy over classified operands.
//
// The dispatcher is a pure function of its inputs. It never holds on to a
// concrete metric, only to the distance.Strategy passed at the call site,
// and it returns a result only after the whole computation has succeeded.
//
// Pairwise matrices are built from the upper triangle: every unordered pair
// is evaluated once and mirrored, so the result is exactly symmetric with a
// zero diagonal and an n-lane pairwise call invokes the strategy n(n-1)/2
// times. WithParallelism spreads the triangle rows across goroutines without
// changing either property.
package dispatch
