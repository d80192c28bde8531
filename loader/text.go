package loader

import (
	"bytes"
	"strings"

	"github.com/hupe1980/vecdist/numeric"
)

type delimiter struct {
	name  string
	split func(data []byte) ([][]string, string, error)
}

// textDelimiters is the attempt order for delimited text.
var textDelimiters = []delimiter{
	{"auto", splitSniffed},
	{"tab", fixed("tab", '\t')},
	{"space", fixed("space", ' ')},
	{"comma", fixed("comma", ',')},
}

// sniffCandidate is one separator the auto attempt may settle on.
type sniffCandidate struct {
	name  string
	split func(line string) []string
}

// sniffCandidates are tried in order. Tab is left to the dedicated tab
// attempt so tab-separated files are always reported as such.
var sniffCandidates = []sniffCandidate{
	{"comma", splitTrimmed(",")},
	{"semicolon", splitTrimmed(";")},
	{"blank", func(line string) []string {
		return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
	}},
}

func splitTrimmed(sep string) func(string) []string {
	return func(line string) []string {
		fields := strings.Split(line, sep)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields
	}
}

// splitSniffed picks the first candidate separator that yields the same
// field count, greater than one, on every non-blank line. When none does,
// each line becomes a single field.
func splitSniffed(data []byte) ([][]string, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	for _, c := range sniffCandidates {
		if records, ok := splitConsistent(lines, c.split); ok {
			return records, "auto:" + c.name, nil
		}
	}

	records := make([][]string, len(lines))
	for i, line := range lines {
		records[i] = []string{strings.TrimSpace(line)}
	}
	return records, "auto:none", nil
}

func splitConsistent(lines []string, split func(string) []string) ([][]string, bool) {
	if len(lines) == 0 {
		return nil, false
	}
	records := make([][]string, len(lines))
	width := -1
	for i, line := range lines {
		fields := split(line)
		if len(fields) < 2 || (width >= 0 && len(fields) != width) {
			return nil, false
		}
		width = len(fields)
		records[i] = fields
	}
	return records, true
}

func fixed(name string, comma rune) func([]byte) ([][]string, string, error) {
	return func(data []byte) ([][]string, string, error) {
		records, err := readRecords(data, comma, false)
		return records, name, err
	}
}

// parseText tries each delimiter in order and returns the first non-empty
// rectangular result together with the name of the delimiter that produced
// it.
func parseText(data []byte) (*numeric.Array, string, error) {
	for _, d := range textDelimiters {
		records, name, err := d.split(data)
		if err != nil {
			continue
		}
		arr, err := toArray(records)
		if err != nil {
			continue
		}
		return arr, name, nil
	}
	return nil, "", parseFailure("could not parse text file with any delimiter")
}
