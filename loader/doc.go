// Package loader reads tabular files (CSV, spreadsheets, delimited text)
// into validated numeric arrays.
//
// The format is chosen from the file extension before any content is read.
// Every format goes through the same cell coercion: unparseable cells become
// missing, rows and then columns that are entirely missing are dropped, and
// whatever remains must be a complete rectangle of finite numbers.
//
// Heuristics are applied in a fixed order:
//
//   - CSV: the first record is a header when any of its non-empty cells is
//     not a number.
//   - Spreadsheet: the first row of the first sheet is always a header.
//   - Text: a sniffed separator is tried first, then tab, space, comma; the
//     first one yielding a non-empty rectangle wins.
//
// Paths may carry one compression suffix (.gz, .zst, .lz4) and may name
// objects in a registered blob store, e.g. "s3://bucket/points.csv".
package loader
