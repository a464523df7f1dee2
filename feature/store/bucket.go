package store

import (
	"context"
	"fmt"
	"strings"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CreateBucket creates a publicly readable bucket and returns the name it was
// created under. Names are sanitized first; when that changes the name the
// configured NamePolicy decides whether to go on. Buckets whose name starts
// with "www." are also enabled as web sites.
//
// Once the bucket is made, a later failure to apply the policy or to enable
// website hosting returns the bucket name together with the error. The bucket
// is not removed; retry EnableWebsite or delete it.
func (s *Service) CreateBucket(ctx context.Context, name string) (string, error) {
	sanitized := utils.SanitizeBucketName(name)
	if sanitized == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBucketName, name)
	}
	if sanitized != name {
		s.logger.Warn("Invalid characters removed from bucket name",
			zap.String("requested", name),
			zap.String("bucket", sanitized))
		if err := s.namePolicy(name, sanitized); err != nil {
			return "", err
		}
	}

	exists, err := s.BucketExists(ctx, sanitized)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrBucketAlreadyExists, sanitized)
	}

	if err := s.client.MakeBucket(ctx, sanitized, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return "", fmt.Errorf("failed to create bucket %s: %w", sanitized, mapError(err))
	}
	s.logger.Info("Created bucket", zap.String("bucket", sanitized), zap.String("region", s.region))

	if err := s.client.SetBucketPolicy(ctx, sanitized, PublicReadPolicy(sanitized)); err != nil {
		return sanitized, fmt.Errorf("failed to set policy on bucket %s: %w", sanitized, mapError(err))
	}

	if strings.HasPrefix(sanitized, "www.") {
		if err := s.EnableWebsite(ctx, sanitized, ""); err != nil {
			return sanitized, err
		}
	}

	return sanitized, nil
}

// BucketExists reports whether a bucket named exactly name is visible to the
// credentials. It lists all buckets on every call.
func (s *Service) BucketExists(ctx context.Context, name string) (bool, error) {
	names, err := s.ListBuckets(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ListBuckets returns the names of all buckets in the account.
func (s *Service) ListBuckets(ctx context.Context) ([]string, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", mapError(err))
	}

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// BucketLocation returns the region of a bucket.
func (s *Service) BucketLocation(ctx context.Context, bucket string) (string, error) {
	location, err := s.client.GetBucketLocation(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to get location of bucket %s: %w", bucket, mapError(err))
	}
	return location, nil
}
