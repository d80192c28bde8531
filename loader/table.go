package loader

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vecdist/internal/conv"
	"github.com/hupe1980/vecdist/numeric"
)

// parseError marks content that could not be reduced to a numeric rectangle.
// Load reports it as ErrParseFailure; any other parse error is ErrUnsupportedFormat.
type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func parseFailure(format string, args ...any) error {
	return &parseError{msg: fmt.Sprintf(format, args...)}
}

func isParseError(err error) bool {
	var pe *parseError
	return errors.As(err, &pe)
}

var errNoNumericData = parseFailure("no numeric data found")

// parseCell converts one cell. Empty, unparseable and non-finite cells are missing.
func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN(), false
	}
	return f, true
}

// isHeader reports whether any non-empty cell of record is not a number.
// "nan", "inf" and out-of-range values count as numbers here, so a data row
// holding them is kept and surfaces later as a missing cell.
func isHeader(record []string) bool {
	for _, c := range record {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !looksNumeric(c) {
			return true
		}
	}
	return false
}

func looksNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// toArray coerces raw records into a rank-2 array. Records may be ragged;
// short records are padded with missing cells. Rows and then columns with no
// numeric cell are dropped; any missing cell left over is an error.
func toArray(records [][]string) (*numeric.Array, error) {
	width := 0
	for _, r := range records {
		width = max(width, len(r))
	}

	if _, err := conv.IntToUint32(len(records)); err != nil {
		return nil, fmt.Errorf("too many rows: %w", err)
	}
	if _, err := conv.IntToUint32(width); err != nil {
		return nil, fmt.Errorf("too many columns: %w", err)
	}

	cells := make([]float64, len(records)*width)
	rows := roaring.New()
	cols := roaring.New()
	for i, r := range records {
		for j := 0; j < width; j++ {
			v := math.NaN()
			if j < len(r) {
				if f, ok := parseCell(r[j]); ok {
					v = f
					rows.Add(uint32(i))
					cols.Add(uint32(j))
				}
			}
			cells[i*width+j] = v
		}
	}

	if rows.IsEmpty() {
		return nil, errNoNumericData
	}

	keptRows, keptCols := rows.ToArray(), cols.ToArray()
	data := make([]float64, 0, len(keptRows)*len(keptCols))
	for _, i32 := range keptRows {
		i, err := conv.Uint32ToInt(i32)
		if err != nil {
			return nil, err
		}
		for _, j := range keptCols {
			v := cells[i*width+int(j)]
			if math.IsNaN(v) {
				return nil, parseFailure("missing value at row %d, column %d after dropping empty rows and columns", i, j)
			}
			data = append(data, v)
		}
	}

	return numeric.NewDense(len(keptRows), len(keptCols), data)
}
