package numeric

import (
	"fmt"
	"strings"

	"github.com/hupe1980/vecdist/internal/errs"
)

// Axis selects whether rows or columns of a rank-2 array are the vectors
// being compared.
type Axis int

const (
	// AxisRows compares rows (the default).
	AxisRows Axis = iota
	// AxisColumns compares columns.
	AxisColumns
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "rows"/"0" or "columns"/"1".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row", "0":
		return AxisRows, nil
	case "columns", "column", "cols", "1":
		return AxisColumns, nil
	default:
		return 0, errs.Errorf(errs.ErrInvalidInput, "unknown axis %q", s)
	}
}
