package audit

import (
	"context"
	"fmt"

	"minio-upload/feature/upload"

	"gorm.io/gorm"
)

// Store persists upload records.
type Store struct {
	db *gorm.DB
}

// NewStore creates an audit store on an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the upload_records table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate upload_records: %w", err)
	}
	return nil
}

// RecordUpload stores one row for a completed upload.
func (s *Store) RecordUpload(ctx context.Context, tool string, res *upload.Result) error {
	rec := &Record{
		Tool:        tool,
		Bucket:      res.Bucket,
		ObjectName:  res.ObjectName,
		ETag:        res.ETag,
		VersionID:   res.VersionID,
		Size:        res.Size,
		ContentType: res.ContentType,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record upload %s/%s: %w", res.Bucket, res.ObjectName, err)
	}
	return nil
}
