package upload

import (
	"bytes"
	"context"
	"time"

	"minio-upload/core/storage"

	"go.uber.org/zap"
)

// Resolver returns a fresh storage configuration snapshot.
type Resolver func() (storage.Config, error)

// Recorder receives every successful upload.
type Recorder interface {
	RecordUpload(ctx context.Context, tool string, res *Result) error
}

// Request is a single upload.
type Request struct {
	// Data is the payload, it must not be empty.
	Data []byte
	// FileName is the caller's file name, used only to derive a key.
	FileName string
	// Bucket overrides the configured default bucket.
	Bucket string
	// ObjectName overrides key generation.
	ObjectName string
	// ContentType is stored with the object.
	ContentType string
	// Tool names the entry point that produced the request.
	Tool string
}

// Result describes a stored object.
type Result struct {
	Bucket      string  `json:"bucket"`
	ObjectName  string  `json:"object_name"`
	ETag        string  `json:"etag"`
	VersionID   *string `json:"version_id"`
	Size        int64   `json:"size"`
	ContentType string  `json:"content_type"`
	URL         string  `json:"url"`
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder attaches an audit recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithClock overrides the time source used for key dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDSource overrides the random component of generated keys.
func WithIDSource(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// Service turns payloads into stored objects.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	resolve   Resolver
	newClient storage.Factory
	logger    *zap.Logger
	recorder  Recorder
	now       func() time.Time
	newID     func() string
}

// NewService creates an upload service. Configuration is resolved and a
// storage client is built on every call.
func NewService(resolve Resolver, newClient storage.Factory, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		resolve:   resolve,
		newClient: newClient,
		logger:    logger,
		now:       time.Now,
		newID:     randomHex,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveBucket returns explicit when set, else the configured default.
func ResolveBucket(explicit, defaultBucket string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if defaultBucket != "" {
		return defaultBucket, nil
	}
	return "", configurationError("no bucket given and MINIO_DEFAULT_BUCKET is not set")
}

// Upload stores req.Data and returns the object's metadata.
// Nothing is written when any step before the put fails.
func (s *Service) Upload(ctx context.Context, req Request) (*Result, error) {
	cfg, err := s.resolve()
	if err != nil {
		return nil, configurationError("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, configurationError("%v", err)
	}
	client, err := s.newClient(cfg)
	if err != nil {
		return nil, configurationError("%v", err)
	}

	bucket, err := ResolveBucket(req.Bucket, cfg.DefaultBucket)
	if err != nil {
		return nil, err
	}

	objectName := req.ObjectName
	if objectName == "" {
		objectName = s.keyGenerator(cfg.ObjectPrefix).Generate(req.FileName)
	}

	if len(req.Data) == 0 {
		return nil, validationError("upload content is empty")
	}

	log := s.logger.With(
		zap.String("tool", req.Tool),
		zap.String("bucket", bucket),
		zap.String("object", objectName),
	)

	if err := NewProvisioner(client, cfg.AutoCreateBucket, log).Ensure(ctx, bucket); err != nil {
		log.Error("Bucket check failed", zap.Error(err))
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = DefaultBinaryContentType
	}

	size := int64(len(req.Data))
	info, err := client.PutObject(ctx, bucket, objectName, bytes.NewReader(req.Data), size, contentType)
	if err != nil {
		log.Error("Upload failed", zap.Error(err))
		return nil, storageError(err)
	}

	res := &Result{
		Bucket:      bucket,
		ObjectName:  objectName,
		ETag:        info.ETag,
		Size:        size,
		ContentType: contentType,
		URL:         ObjectURL(cfg, bucket, objectName),
	}
	if info.VersionID != "" {
		version := info.VersionID
		res.VersionID = &version
	}

	log.Info("Upload completed", zap.Int64("size", size), zap.String("etag", res.ETag))

	if s.recorder != nil {
		if err := s.recorder.RecordUpload(ctx, req.Tool, res); err != nil {
			log.Warn("Failed to record upload", zap.Error(err))
		}
	}

	return res, nil
}

func (s *Service) keyGenerator(prefix string) *KeyGenerator {
	g := NewKeyGenerator(prefix)
	g.now = s.now
	g.newID = s.newID
	return g
}
