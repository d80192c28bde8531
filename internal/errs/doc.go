// Package errs defines the error kinds shared by every vecdist package.
//
// Every failure surfaced to a caller satisfies errors.Is for exactly one of
// the sentinel kinds. Detail-carrying errors (operand shapes, file paths)
// are typed and unwrap to the underlying cause.
package errs
