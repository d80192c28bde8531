// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "inputs/")
//	arr, _ := loader.New(loader.WithBlobStore("s3://my-bucket", store)).
//	    Load(ctx, "s3://my-bucket/points.csv")
//
// # Features
//
//   - Range reads through HeadObject + GetObject
//   - Whole-object downloads through the S3 transfer manager (Fetcher)
//   - Configurable prefix for multi-tenant isolation
package s3
