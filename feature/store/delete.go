package store

import (
	"context"
	"fmt"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DeleteObject removes the object stored under key. Leading slashes are
// removed from key. The delete is requested whether or not the object exists;
// without bucket versioning it cannot be undone.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) error {
	key = utils.TrimLeadingSlashes(key)
	return s.removeObject(ctx, bucket, key)
}

func (s *Service) removeObject(ctx context.Context, bucket, key string) error {
	err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
	s.record(ctx, Transfer{Operation: OpDelete, Bucket: bucket, Key: key, Err: err})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, mapError(err))
	}
	return nil
}

// EmptyBucket deletes every object in bucket, one request per object. It is
// not atomic: it keeps going past failures and, if any delete failed, returns
// an error wrapping ErrPartialDelete together with each cause, leaving the
// bucket partially emptied.
func (s *Service) EmptyBucket(ctx context.Context, bucket string) error {
	objects, err := s.listAll(ctx, bucket, "")
	if err != nil {
		return err
	}

	var errs error
	deleted := 0
	for _, obj := range objects {
		// Remote keys are used verbatim so that keys with leading slashes go too
		if err := s.removeObject(ctx, bucket, obj.Key); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		deleted++
	}

	s.logger.Info("Emptied bucket",
		zap.String("bucket", bucket),
		zap.Int("deleted", deleted),
		zap.Int("failed", len(objects)-deleted))

	if errs != nil {
		return fmt.Errorf("%w: %s: %d of %d objects left: %w", ErrPartialDelete, bucket, len(objects)-deleted, len(objects), errs)
	}
	return nil
}

// DeleteBucket empties bucket and then removes it. If emptying fails the
// bucket is left in place, partially emptied.
func (s *Service) DeleteBucket(ctx context.Context, bucket string) error {
	if err := s.EmptyBucket(ctx, bucket); err != nil {
		return err
	}

	if err := s.client.RemoveBucket(ctx, bucket); err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, mapError(err))
	}
	s.logger.Info("Deleted bucket", zap.String("bucket", bucket))
	return nil
}
