package loader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/xuri/excelize/v2"
)

// parseSpreadsheet reads the first sheet of an .xlsx or .xls workbook. The
// first row is always treated as a header and dropped.
func parseSpreadsheet(data []byte, ext string) (*numeric.Array, error) {
	var (
		rows [][]string
		err  error
	)
	if ext == ".xls" {
		rows, err = readXLS(data)
	} else {
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 {
		rows = rows[1:]
	}

	arr, err := toArray(rows)
	if errors.Is(err, errNoNumericData) {
		return nil, parseFailure("no numeric data found in spreadsheet")
	}
	return arr, err
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, parseFailure("workbook has no sheets")
	}
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readXLS(data []byte) (rows [][]string, err error) {
	// The BIFF reader panics on some malformed workbooks.
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("corrupt workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, parseFailure("workbook has no sheets")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, parseFailure("workbook has no sheets")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, max(row.LastCol(), 0))
		for c := max(row.FirstCol(), 0); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
