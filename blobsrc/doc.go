// Package blobsrc provides an asset source backed by a blob storage
// bucket, using the Go CDK's blob abstraction. Any driver supported by
// gocloud.dev works: S3, GCS, Azure Blob, or in-memory buckets for tests.
//
// # Usage
//
// Open a bucket with the driver of your choice, then hand it to [New]:
//
//	import (
//		"gocloud.dev/blob"
//		_ "gocloud.dev/blob/s3blob"
//	)
//
//	bucket, err := blob.OpenBucket(ctx, "s3://my-asset-bucket?region=us-east-1")
//	if err != nil {
//		return err
//	}
//	defer bucket.Close()
//
//	src, err := blobsrc.New(bucket)
//
// Asset paths map directly to bucket keys, and directory listings are
// synthesized from key prefixes with the "/" delimiter.
//
// # Errors
//
// A missing key satisfies errors.Is(err, fs.ErrNotExist); other bucket
// failures are returned as-is, wrapped in an [io/fs.PathError].
package blobsrc
