// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (default) and the AWS SDK S3 client behind one
// small interface covering what an upload needs: checking bucket existence,
// creating a bucket and putting an object of known size. Both implementations
// speak to AWS S3 and to self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Drivers
//
//   - minio: minio-go/v7 (MINIO_DRIVER=minio, the default).
//   - s3: aws-sdk-go-v2 with path-style addressing (MINIO_DRIVER=s3).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Minio)
//	exists, err := client.BucketExists(ctx, "uploads")
package storage
