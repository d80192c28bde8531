package numeric

import (
	"math"
	"slices"

	"github.com/hupe1980/vecdist/internal/errs"
)

// Shape is the extent of an Array along each dimension.
type Shape []int

// Equal reports whether s and o describe the same extent.
func (s Shape) Equal(o Shape) bool { return slices.Equal(s, o) }

func (s Shape) String() string { return errs.FormatShape(s) }

// Array is a dense row-major array of rank 1 (a point) or rank 2 (a matrix).
type Array struct {
	data  []float64
	shape Shape
}

// NewVector returns a rank-1 array holding a copy of data.
func NewVector(data []float64) (*Array, error) {
	return newArray(slices.Clone(data), Shape{len(data)})
}

// NewMatrix returns a rank-2 array from rows, which must be rectangular.
func NewMatrix(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return nil, errs.Errorf(errs.ErrInvalidInput, "array cannot be empty")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, errs.Errorf(errs.ErrInvalidInput, "ragged nested sequence: row %d has %d values, want %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return newArray(data, Shape{len(rows), cols})
}

// NewDense returns a rank-2 array of the given shape backed by a copy of data.
func NewDense(rows, cols int, data []float64) (*Array, error) {
	if rows*cols != len(data) {
		return nil, errs.Errorf(errs.ErrInvalidInput, "%d values do not fill shape (%d, %d)", len(data), rows, cols)
	}
	return newArray(slices.Clone(data), Shape{rows, cols})
}

func newArray(data []float64, shape Shape) (*Array, error) {
	if len(data) == 0 {
		return nil, errs.Errorf(errs.ErrInvalidInput, "array cannot be empty")
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errs.Errorf(errs.ErrInvalidInput, "array contains NaN or infinite values")
		}
	}
	return &Array{data: data, shape: shape}, nil
}

// Rank returns the number of dimensions (1 or 2). The zero Array has rank 0.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape { return slices.Clone(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Rows returns the row count. A rank-1 array of length n is an n x 1 column.
func (a *Array) Rows() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Cols returns the column count. A rank-1 array has a single column.
func (a *Array) Cols() int {
	switch len(a.shape) {
	case 0:
		return 0
	case 1:
		return 1
	}
	return a.shape[1]
}

// At returns the element at row i, column j.
func (a *Array) At(i, j int) float64 { return a.data[i*a.Cols()+j] }

// Row returns row i as a read-only view into the array.
func (a *Array) Row(i int) []float64 {
	c := a.Cols()
	return a.data[i*c : (i+1)*c : (i+1)*c]
}

// Col returns a copy of column j.
func (a *Array) Col(j int) []float64 {
	rows, cols := a.Rows(), a.Cols()
	out := make([]float64, rows)
	for i := range out {
		out[i] = a.data[i*cols+j]
	}
	return out
}

// Values returns the elements in row-major order as a read-only view.
// For a rank-1 array this is the point itself.
func (a *Array) Values() []float64 { return a.data[:len(a.data):len(a.data)] }

// Flatten returns a copy of the elements in row-major order.
func (a *Array) Flatten() []float64 { return slices.Clone(a.data) }

// Lanes returns how many comparison vectors the array yields along axis.
func (a *Array) Lanes(axis Axis) int {
	if axis == AxisColumns {
		return a.Cols()
	}
	return a.Rows()
}

// LaneLen returns the length of each vector yielded along axis.
func (a *Array) LaneLen(axis Axis) int {
	if axis == AxisColumns {
		return a.Rows()
	}
	return a.Cols()
}

// Lane returns the i-th comparison vector along axis: a row for AxisRows,
// a column for AxisColumns.
func (a *Array) Lane(axis Axis, i int) []float64 {
	if axis == AxisColumns {
		return a.Col(i)
	}
	return a.Row(i)
}

// ToRows returns a copy of the array as nested rows.
func (a *Array) ToRows() [][]float64 {
	out := make([][]float64, a.Rows())
	for i := range out {
		out[i] = slices.Clone(a.Row(i))
	}
	return out
}
