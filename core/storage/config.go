package storage

import (
	"errors"
	"strings"
)

const (
	// DriverMinio talks to the store through minio-go.
	DriverMinio = "minio"
	// DriverS3 talks to the store through the AWS SDK.
	DriverS3 = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host[:port] of the storage service.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// Secure indicates whether to use SSL/TLS for connections.
	Secure bool `mapstructure:"secure" default:"false"`
	// Region defaults to us-east-1 so the client never needs GetBucketLocation.
	Region string `mapstructure:"region" default:"us-east-1"`
	// DefaultBucket is used when a caller does not name a bucket.
	DefaultBucket string `mapstructure:"default_bucket" default:""`
	// ObjectPrefix is the first segment of generated object keys.
	ObjectPrefix string `mapstructure:"object_prefix" default:"uploads"`
	// AutoCreateBucket creates missing buckets on upload.
	AutoCreateBucket bool `mapstructure:"auto_create_bucket" default:"true"`
	// Driver selects the client implementation (minio, s3).
	Driver string `mapstructure:"driver" default:"minio"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without any URL scheme.
func (c Config) Host() string {
	endpoint := strings.TrimSpace(c.Endpoint)
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return strings.TrimSuffix(endpoint, "/")
}

// Scheme returns the URL scheme matching the TLS setting.
func (c Config) Scheme() string {
	if c.Secure {
		return "https"
	}
	return "http"
}

// Validate reports the connection settings that are missing.
func (c Config) Validate() error {
	var missing []string
	if c.Host() == "" {
		missing = append(missing, "MINIO_ENDPOINT")
	}
	if c.AccessKey == "" {
		missing = append(missing, "MINIO_ACCESS_KEY")
	}
	if c.SecretKey == "" {
		missing = append(missing, "MINIO_SECRET_KEY")
	}
	if len(missing) > 0 {
		return errors.New("missing storage settings: " + strings.Join(missing, ", "))
	}
	return nil
}
