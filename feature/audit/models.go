package audit

import "time"

// Record is one successful upload.
type Record struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Tool        string    `gorm:"size:64;not null"`
	Bucket      string    `gorm:"size:63;not null;index:idx_upload_bucket_created"`
	ObjectName  string    `gorm:"size:1024;not null"`
	ETag        string    `gorm:"column:etag;size:128"`
	VersionID   *string   `gorm:"size:1024"`
	Size        int64     `gorm:"not null"`
	ContentType string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"index:idx_upload_bucket_created"`
}

// TableName overrides the GORM pluralized default.
func (Record) TableName() string {
	return "upload_records"
}
