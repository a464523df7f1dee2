package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ProgressFunc receives the number of bytes sent so far and the total size.
// Calls for one upload never overlap, even when parts are sent in parallel.
type ProgressFunc func(transferred, total int64)

// UploadOption customizes a single upload.
type UploadOption func(*uploadOptions)

type uploadOptions struct {
	progress ProgressFunc
	acl      ACL
}

// WithProgress reports upload progress to fn.
func WithProgress(fn ProgressFunc) UploadOption {
	return func(o *uploadOptions) { o.progress = fn }
}

// WithACL applies a canned ACL to the uploaded object.
func WithACL(acl ACL) UploadOption {
	return func(o *uploadOptions) { o.acl = acl }
}

// progressReader is handed to the SDK, which reads from it once for every
// chunk it has sent. Multipart uploads read from several goroutines.
type progressReader struct {
	mu          sync.Mutex
	fn          ProgressFunc
	total       int64
	transferred int64
}

func (p *progressReader) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transferred += int64(len(b))
	p.fn(p.transferred, p.total)
	return len(b), nil
}

// NewMetadata builds the metadata sent with an object stored under key.
func NewMetadata(key string, length int64, lastModified time.Time) ObjectMetadata {
	return ObjectMetadata{
		ContentType:     utils.ContentType(key),
		ContentEncoding: ContentEncoding,
		ContentLength:   length,
		LastModified:    lastModified,
	}
}

// UploadFile stores the file at path under key. Leading slashes are removed
// from key. Once stored, the file's modification time is set to the
// last-modified time reported by the service, which ignores the client's.
//
// A failed transfer is logged and returns a zero UploadResult with an error
// wrapping ErrTransferFailed; it is not retried. If only the timestamp sync
// fails, the result is valid and the error wraps ErrTimestampSync.
func (s *Service) UploadFile(ctx context.Context, bucket, key, path string, opts ...UploadOption) (UploadResult, error) {
	key = utils.TrimLeadingSlashes(key)

	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("Upload failed", zap.String("file", path), zap.Error(err))
		return UploadResult{}, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.logger.Error("Upload failed", zap.String("file", path), zap.Error(err))
		return UploadResult{}, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	result, err := s.put(ctx, bucket, key, f, NewMetadata(key, info.Size(), info.ModTime()), opts)
	if err != nil {
		return UploadResult{}, err
	}

	stat, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		s.logger.Warn("Could not read remote timestamp", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return result, fmt.Errorf("%w: %s: %w", ErrTimestampSync, path, mapError(err))
	}
	result.LastModified = stat.LastModified

	// Access time follows too; there is no portable way to set creation time
	if err := os.Chtimes(path, stat.LastModified, stat.LastModified); err != nil {
		s.logger.Warn("Could not update local timestamp", zap.String("file", path), zap.Error(err))
		return result, fmt.Errorf("%w: %s: %w", ErrTimestampSync, path, err)
	}

	return result, nil
}

// UploadString stores contents under key.
func (s *Service) UploadString(ctx context.Context, bucket, key, contents string, opts ...UploadOption) (UploadResult, error) {
	key = utils.TrimLeadingSlashes(key)
	meta := NewMetadata(key, int64(len(contents)), time.Now())
	return s.put(ctx, bucket, key, strings.NewReader(contents), meta, opts)
}

// UploadStream stores length bytes read from r under key. The length must be
// known up front.
func (s *Service) UploadStream(ctx context.Context, bucket, key string, r io.Reader, length int64, opts ...UploadOption) (UploadResult, error) {
	if length < 0 {
		return UploadResult{}, ErrUnknownLength
	}
	key = utils.TrimLeadingSlashes(key)
	meta := NewMetadata(key, length, time.Now())
	return s.put(ctx, bucket, key, r, meta, opts)
}

func (s *Service) put(ctx context.Context, bucket, key string, r io.Reader, meta ObjectMetadata, opts []UploadOption) (UploadResult, error) {
	var o uploadOptions
	for _, opt := range opts {
		opt(&o)
	}

	putOpts := minio.PutObjectOptions{
		ContentType:     meta.ContentType,
		ContentEncoding: meta.ContentEncoding,
		UserMetadata: map[string]string{
			"last-modified": meta.LastModified.UTC().Format(http.TimeFormat),
		},
	}
	if o.acl != "" {
		putOpts.UserMetadata["x-amz-acl"] = string(o.acl)
	}
	if o.progress != nil {
		putOpts.Progress = &progressReader{fn: o.progress, total: meta.ContentLength}
	}

	info, err := s.client.PutObject(ctx, bucket, key, r, meta.ContentLength, putOpts)
	if err != nil {
		s.logger.Error("Upload failed",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err))
		s.record(ctx, Transfer{Operation: OpUpload, Bucket: bucket, Key: key, Size: meta.ContentLength, Err: err})
		return UploadResult{}, fmt.Errorf("%w: %s/%s: %w", ErrTransferFailed, bucket, key, mapError(err))
	}

	result := UploadResult{
		Bucket:       bucket,
		Key:          key,
		ETag:         info.ETag,
		VersionID:    info.VersionID,
		Size:         info.Size,
		LastModified: info.LastModified,
	}
	s.logger.Debug("Uploaded object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.String("content_type", meta.ContentType),
		zap.Int64("size", info.Size))
	s.record(ctx, Transfer{
		Operation:    OpUpload,
		Bucket:       bucket,
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	})
	return result, nil
}
