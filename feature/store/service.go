package store

import (
	"context"
	"time"

	"bucket-manager/core/storage"

	"go.uber.org/zap"
)

// Service is the object-store facade. It holds only shared, read-only
// handles and may be used from several goroutines.
type Service struct {
	client     storage.Client
	website    storage.WebsiteAPI
	logger     *zap.Logger
	namePolicy NamePolicy
	region     string
	recorder   Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithNamePolicy sets the policy consulted when a bucket name had to be sanitized.
func WithNamePolicy(policy NamePolicy) Option {
	return func(s *Service) { s.namePolicy = policy }
}

// WithRegion sets the region new buckets are created in.
func WithRegion(region string) Option {
	return func(s *Service) { s.region = region }
}

// WithRecorder journals every transfer through r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService creates a new storage facade. website may be nil, in which case
// website operations return ErrWebsiteUnsupported.
func NewService(client storage.Client, website storage.WebsiteAPI, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		client:     client,
		website:    website,
		logger:     logger,
		namePolicy: LenientNames,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Operations recorded for each transfer.
const (
	OpUpload   = "upload"
	OpDownload = "download"
	OpDelete   = "delete"
)

// Transfer describes a finished upload, download or delete.
type Transfer struct {
	Operation string
	Bucket    string
	Key       string
	Size      int64
	ETag      string
	// LastModified is the remote timestamp, when known.
	LastModified time.Time
	// Err is the failure, if any.
	Err error
}

// Recorder persists transfers.
type Recorder interface {
	Record(ctx context.Context, t Transfer) error
}

// record never fails the transfer itself; journal errors are only logged.
func (s *Service) record(ctx context.Context, t Transfer) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, t); err != nil {
		s.logger.Warn("Failed to journal transfer",
			zap.String("operation", t.Operation),
			zap.String("bucket", t.Bucket),
			zap.String("key", t.Key),
			zap.Error(err))
	}
}
