package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/hupe1980/vecdist/numeric"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readRecords splits delimited content into ragged records. Blank lines are skipped.
func readRecords(data []byte, comma rune, trimLeadingSpace bool) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = trimLeadingSpace

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// parseCSV decodes comma-separated content, dropping the first record when
// it looks like a header.
func parseCSV(data []byte) (*numeric.Array, bool, error) {
	records, err := readRecords(data, ',', true)
	if err != nil {
		return nil, false, err
	}
	if len(records) == 0 {
		return nil, false, parseFailure("no numeric data found in CSV file")
	}

	header := isHeader(records[0])
	if header {
		records = records[1:]
	}

	arr, err := toArray(records)
	if errors.Is(err, errNoNumericData) {
		return nil, header, parseFailure("no numeric data found in CSV file")
	}
	return arr, header, err
}
