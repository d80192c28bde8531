package numeric

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hupe1980/vecdist/internal/errs"
)

// Coerce converts a scalar, flat sequence, nested sequence or *Array into a
// validated Array.
//
// Scalars become 1-element vectors. Elements may be any Go integer, float
// or bool kind, or strings holding a number. Nested sequences must be
// rectangular; nesting deeper than two levels is rejected.
func Coerce(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		if a == nil {
			return nil, errs.Errorf(errs.ErrInvalidInput, "array cannot be nil")
		}
		// Re-validate: the zero Array is not a usable operand.
		return newArray(a.data, a.shape)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, errs.Errorf(errs.ErrInvalidInput, "array cannot be empty")
	}
	rv = deref(rv)

	if !isSeq(rv) {
		f, err := toFloat(rv)
		if err != nil {
			return nil, err
		}
		return newArray([]float64{f}, Shape{1})
	}

	if rv.Len() == 0 {
		return nil, errs.Errorf(errs.ErrInvalidInput, "array cannot be empty")
	}

	nested := 0
	for i := 0; i < rv.Len(); i++ {
		if isSeq(deref(rv.Index(i))) {
			nested++
		}
	}

	switch nested {
	case 0:
		data, err := toFloats(rv)
		if err != nil {
			return nil, err
		}
		return newArray(data, Shape{len(data)})
	case rv.Len():
		rows := make([][]float64, rv.Len())
		for i := range rows {
			row := deref(rv.Index(i))
			for j := 0; j < row.Len(); j++ {
				if isSeq(deref(row.Index(j))) {
					return nil, errs.Errorf(errs.ErrInvalidInput, "arrays of rank > 2 are not supported")
				}
			}
			r, err := toFloats(row)
			if err != nil {
				return nil, err
			}
			rows[i] = r
		}
		return NewMatrix(rows)
	default:
		return nil, errs.Errorf(errs.ErrInvalidInput, "sequence mixes scalars and nested sequences")
	}
}

func deref(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isSeq(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func toFloats(rv reflect.Value) ([]float64, error) {
	out := make([]float64, rv.Len())
	for i := range out {
		f, err := toFloat(deref(rv.Index(i)))
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(rv reflect.Value) (float64, error) {
	if !rv.IsValid() {
		return 0, errs.Errorf(errs.ErrInvalidInput, "array must contain only numeric values, got nil")
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, errs.Errorf(errs.ErrInvalidInput, "array must contain only numeric values, got %q", rv.String())
		}
		return f, nil
	default:
		return 0, errs.Errorf(errs.ErrInvalidInput, "array must contain only numeric values, got %s", rv.Type())
	}
}
