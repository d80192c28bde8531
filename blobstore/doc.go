// Package blobstore provides the read-only byte sources the tabular loader
// reads from.
//
// A BlobStore opens named blobs. Local files, in-memory blobs, Amazon S3
// and MinIO are built in; the loader routes a path such as
// "s3://bucket/data.csv" to the store registered for "s3://bucket".
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
// Stores that can download a whole object more efficiently than ranged
// ReadAt calls may also implement Fetcher.
package blobstore
