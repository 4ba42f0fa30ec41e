package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// UploadInfo describes an object written by PutObject.
type UploadInfo struct {
	Bucket    string
	Key       string
	ETag      string
	VersionID string
	Size      int64
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket in the configured region.
	MakeBucket(ctx context.Context, bucketName string) error
	// PutObject uploads an object of a known size.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) (UploadInfo, error)
}

// Factory builds a Client from a configuration snapshot.
type Factory func(cfg Config) (Client, error)

// NewClient creates a storage client based on the configured driver.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "", DriverMinio:
		return newMinioClient(cfg)
	case DriverS3:
		return newS3Client(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// newTransport builds an HTTP transport with strict connection timeouts.
func newTransport(cfg Config) *http.Transport {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	applyTimeouts(tr, cfg)
	return tr
}

// applyTimeouts sets the dial, TLS handshake and response header timeouts on tr.
func applyTimeouts(tr *http.Transport, cfg Config) {
	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	tr.DialContext = (&net.Dialer{
		Timeout:   timeoutDuration, // Connection setup timeout
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.TLSHandshakeTimeout = timeoutDuration
	tr.ResponseHeaderTimeout = timeoutDuration // Wait for first response byte timeout
}
