// Package source models the raw inputs vecdist accepts as a closed tagged
// union. The tag is decided once, at the boundary, by From; downstream code
// switches on the concrete variant and never re-inspects the raw value.
package source

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/vecdist/internal/errs"
	"github.com/hupe1980/vecdist/numeric"
)

// Kind identifies a Source variant.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindNestedSequence
	KindArray
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNestedSequence:
		return "nested_sequence"
	case KindArray:
		return "array"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Source is one raw input. The set of implementations is closed.
type Source interface {
	Kind() Kind
	isSource()
}

// Scalar is a single number.
type Scalar struct{ Value any }

// Sequence is a flat slice or array of numbers.
type Sequence struct{ Values any }

// NestedSequence is a slice of rows.
type NestedSequence struct{ Rows any }

// Array is an already-built numeric array.
type Array struct{ Array *numeric.Array }

// Path names a tabular file, local or behind a registered blob store scheme.
type Path string

func (Scalar) Kind() Kind         { return KindScalar }
func (Sequence) Kind() Kind       { return KindSequence }
func (NestedSequence) Kind() Kind { return KindNestedSequence }
func (Array) Kind() Kind          { return KindArray }
func (Path) Kind() Kind           { return KindPath }

func (Scalar) isSource()         {}
func (Sequence) isSource()       {}
func (NestedSequence) isSource() {}
func (Array) isSource()          {}
func (Path) isSource()           {}

// From classifies a raw Go value.
//
// Strings are paths; *numeric.Array is an Array; slices whose elements are
// all slices are nested sequences, other slices are sequences; numbers and
// bools are scalars. An existing Source is returned unchanged.
func From(v any) (Source, error) {
	switch t := v.(type) {
	case nil:
		return nil, errs.Errorf(errs.ErrParseFailure, "unsupported input type: nil")
	case Source:
		return t, nil
	case string:
		return Path(t), nil
	case *numeric.Array:
		return Array{Array: t}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() > 0 && allSeq(rv) {
			return NestedSequence{Rows: v}, nil
		}
		return Sequence{Values: v}, nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Scalar{Value: v}, nil
	default:
		return nil, errs.Errorf(errs.ErrParseFailure, "unsupported input type: %T", v)
	}
}

func allSeq(rv reflect.Value) bool {
	for i := 0; i < rv.Len(); i++ {
		e := rv.Index(i)
		for e.Kind() == reflect.Interface && !e.IsNil() {
			e = e.Elem()
		}
		if e.Kind() != reflect.Slice && e.Kind() != reflect.Array {
			return false
		}
	}
	return true
}
