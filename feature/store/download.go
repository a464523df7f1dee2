package store

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DownloadFile opens the object stored under key. The stream starts at the
// beginning of the content and keeps the connection open until it is drained
// or closed; the caller must do both.
func (s *Service) DownloadFile(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	key = utils.Relativize(key)

	rc, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Error("Download failed",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err))
		s.record(ctx, Transfer{Operation: OpDownload, Bucket: bucket, Key: key, Err: err})
		return nil, fmt.Errorf("%w: %s/%s: %w", ErrTransferFailed, bucket, key, mapError(err))
	}

	s.record(ctx, Transfer{Operation: OpDownload, Bucket: bucket, Key: key})
	return rc, nil
}

// ResourceURL returns the path-style URL of an object on the configured endpoint.
func (s *Service) ResourceURL(bucket, key string) string {
	endpoint := s.client.EndpointURL()
	if endpoint == nil {
		return ""
	}
	u := url.URL{
		Scheme: endpoint.Scheme,
		Host:   endpoint.Host,
		Path:   "/" + bucket + "/" + utils.Relativize(key),
	}
	return u.String()
}
