// Package fs provides a read-only filesystem abstraction for local sources
// with fault injection for tests.
//
//   - [File]: an open file that supports positional reads
//   - [FileSystem]: opens and stats files
//   - [LocalFS]: the os-backed implementation, exposed as Default
//   - [FaultyFS]: wraps another FileSystem and fails opens, stats or reads
//
// # Usage
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("points.csv", fs.Fault{FailAfterBytes: 16})
//	// inject ffs into the loader under test
//
// The interfaces take no context.Context. Local reads are short and cannot
// be interrupted at the syscall level; remote sources go through
// blobstore.Blob, which does take one.
package fs
