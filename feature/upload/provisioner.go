package upload

import (
	"context"

	"minio-upload/core/storage"

	"go.uber.org/zap"
)

// Provisioner makes sure a target bucket exists before an upload.
type Provisioner struct {
	client     storage.Client
	autoCreate bool
	logger     *zap.Logger
}

// NewProvisioner creates a provisioner. With autoCreate disabled a missing
// bucket is reported as a configuration error instead of being created.
func NewProvisioner(client storage.Client, autoCreate bool, logger *zap.Logger) *Provisioner {
	return &Provisioner{client: client, autoCreate: autoCreate, logger: logger}
}

// Ensure checks that bucket exists and creates it when allowed.
// A created bucket is kept even if the upload that triggered it fails later.
func (p *Provisioner) Ensure(ctx context.Context, bucket string) error {
	exists, err := p.client.BucketExists(ctx, bucket)
	if err != nil {
		return storageError(err)
	}
	if exists {
		return nil
	}
	if !p.autoCreate {
		return configurationError("bucket %s does not exist and auto-create is disabled", bucket)
	}

	if err := p.client.MakeBucket(ctx, bucket); err != nil {
		p.logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return storageError(err)
	}
	p.logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
