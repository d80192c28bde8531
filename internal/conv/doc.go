// Package conv provides checked integer conversions.
//
// Table dimensions are indexed by 32-bit bitmaps while parsing. These helpers
// reject tables whose row or column count does not fit, instead of letting a
// cast wrap around.
package conv
