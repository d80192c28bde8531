package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for missing, empty, non-numeric or non-finite data
	// and for paths that do not name an existing regular file.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat is returned for unrecognized file extensions and for
	// unexpected failures while reading file content.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrParseFailure is returned when content cannot be reduced to a non-empty
	// rectangular numeric array.
	ErrParseFailure = errors.New("parse failure")

	// ErrDimensionMismatch is returned when two operands that must align do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIncompatibleShapes is returned when mixed operands cannot be flattened
	// into a comparable pair.
	ErrIncompatibleShapes = errors.New("incompatible shapes")
)

// Errorf returns an error of the given kind with a formatted message.
func Errorf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.kind.Error() + ": " + e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// ShapeError reports two operands whose shapes do not fit the requested operation.
type ShapeError struct {
	Kind error
	Op   string
	A, B []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s: shapes %s and %s", e.Kind, e.Op, FormatShape(e.A), FormatShape(e.B))
}

func (e *ShapeError) Is(target error) bool { return target == e.Kind }

// FileError reports a failure tied to a source path.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FileError struct {
	Kind  error
	Path  string
	cause error
}

// NewFileError wraps cause as a failure of the given kind for path.
func NewFileError(kind error, path string, cause error) *FileError {
	return &FileError{Kind: kind, Path: path, cause: cause}
}

func (e *FileError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.cause)
}

func (e *FileError) Is(target error) bool { return target == e.Kind }

func (e *FileError) Unwrap() error { return e.cause }

// FormatShape renders a shape the way it is printed in error messages, e.g. "(3, 2)".
func FormatShape(shape []int) string {
	switch len(shape) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", shape[0])
	}
	s := "("
	for i, d := range shape {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(d)
	}
	return s + ")"
}
