// Package resource bounds the memory held by in-flight source loads and
// throttles reads from remote blob stores.
//
// A nil *Controller is valid and imposes no limits.
package resource
