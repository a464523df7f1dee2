package store

import (
	"context"
	"fmt"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
)

// ListObjectsByPrefix returns every key under prefix annotated with its size,
// formatted as "<key> (size = <n>)". Leading slashes are removed from prefix.
func (s *Service) ListObjectsByPrefix(ctx context.Context, bucket, prefix string) ([]string, error) {
	objects, err := s.listAll(ctx, bucket, utils.TrimLeadingSlashes(prefix))
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(objects))
	for _, obj := range objects {
		lines = append(lines, fmt.Sprintf("%s (size = %d)", obj.Key, obj.Size))
	}
	return lines, nil
}

// GetAllObjectData returns a summary of every object under prefix. When
// prefix had leading slashes they are removed, and the returned keys are
// relativized as well.
func (s *Service) GetAllObjectData(ctx context.Context, bucket, prefix string) ([]ObjectSummary, error) {
	normalized := utils.TrimLeadingSlashes(prefix)
	adjusted := normalized != prefix

	objects, err := s.listAll(ctx, bucket, normalized)
	if err != nil {
		return nil, err
	}

	summaries := make([]ObjectSummary, 0, len(objects))
	for _, obj := range objects {
		summary := summaryFromInfo(obj)
		if adjusted {
			summary.Key = utils.Relativize(summary.Key)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetOneObjectData returns the object whose key equals prefix once leading
// slashes are removed, with its key relativized. It returns ErrObjectNotFound
// when no key matches exactly.
func (s *Service) GetOneObjectData(ctx context.Context, bucket, prefix string) (ObjectSummary, error) {
	prefix = utils.TrimLeadingSlashes(prefix)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return ObjectSummary{}, fmt.Errorf("failed to list objects in %s: %w", bucket, mapError(obj.Err))
		}
		if obj.Key == prefix {
			summary := summaryFromInfo(obj)
			summary.Key = utils.Relativize(summary.Key)
			return summary, nil
		}
	}
	return ObjectSummary{}, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, prefix)
}

// listAll drains the listing of bucket under prefix. The SDK fetches one page
// at a time as the channel is read.
func (s *Service) listAll(ctx context.Context, bucket, prefix string) ([]minio.ObjectInfo, error) {
	// Cancelling stops the SDK's paging goroutine if we return early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objects []minio.ObjectInfo
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, mapError(obj.Err))
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
