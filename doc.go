// Package vecdist computes distances between points and arrays of points.
//
// Inputs can be numbers, flat or nested slices, *numeric.Array values, or
// paths to tabular files (.csv, .xlsx, .xls, .txt, optionally compressed
// with .gz, .zst or .lz4). Paths may also name objects in a registered blob
// store such as S3 or MinIO.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, _ := vecdist.Distance(ctx, []float64{0, 0}, []float64{3, 4})
//	fmt.Println(res.Scalar) // 5
//
// # Calculation Types
//
// The shapes of the two inputs decide what is computed:
//
//   - one input: pairwise distances between its points (an n x n matrix)
//   - two points of equal length: a single distance
//   - a point and an array: one distance per point of the array
//   - two arrays of equal shape: one distance per matching pair of points
//   - anything else: both inputs are flattened and truncated to the shorter
//     length, then compared as two points
//
// WithAxis selects whether the rows (default) or the columns of an array
// are its points.
//
// # Files
//
//	res, _ := vecdist.Distance(ctx, "points.csv", []float64{0, 0})
//
// CSV headers are detected from the first row. Spreadsheets always drop
// their first row. Plain text first gets a sniffed separator (comma,
// semicolon or blanks) and then falls back to tab, space and comma, in that
// order.
//
// # Remote Sources
//
//	store := s3store.NewStore(client, "bucket", "")
//	calc := vecdist.New(vecdist.WithBlobStore("s3://bucket", store))
//	res, _ := calc.Distance(ctx, "s3://bucket/points.csv.gz", nil)
//
// # Metrics
//
// Euclidean distance is the default. WithMetric selects a built-in metric
// and WithStrategy accepts any distance.Strategy.
package vecdist
