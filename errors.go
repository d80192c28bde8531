package vecdist

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/resource"
)

var (
	// ErrInvalidInput reports missing, empty or non-numeric data, or a path
	// that does not name a regular file.
	ErrInvalidInput = errs.ErrInvalidInput
	// ErrUnsupportedFormat reports an unknown file extension or a failure
	// while reading a file.
	ErrUnsupportedFormat = errs.ErrUnsupportedFormat
	// ErrParseFailure reports file content that does not reduce to a
	// non-empty rectangular numeric array.
	ErrParseFailure = errs.ErrParseFailure
	// ErrDimensionMismatch reports operands that must align but do not.
	ErrDimensionMismatch = errs.ErrDimensionMismatch
	// ErrIncompatibleShapes reports operands that cannot be compared at all.
	ErrIncompatibleShapes = errs.ErrIncompatibleShapes
	// ErrMemoryLimitExceeded is wrapped when a load would exceed the
	// configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ShapeError carries the operand shapes of a failed dispatch.
type ShapeError = errs.ShapeError

// FileError carries the path of a failed load.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FileError = errs.FileError

var kinds = []error{
	ErrInvalidInput,
	ErrUnsupportedFormat,
	ErrParseFailure,
	ErrDimensionMismatch,
	ErrIncompatibleShapes,
}

// translateError makes sure every error leaving the package matches one of
// the exported kinds. Context errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	if errors.Is(err, ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
