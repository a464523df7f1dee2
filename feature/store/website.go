package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// EnableWebsite configures bucket for website hosting with index.html as the
// index document and errorPage, if not empty, as the error document.
// Repeated calls overwrite the configuration.
func (s *Service) EnableWebsite(ctx context.Context, bucket, errorPage string) error {
	if s.website == nil {
		return ErrWebsiteUnsupported
	}

	cfg := &types.WebsiteConfiguration{
		IndexDocument: &types.IndexDocument{Suffix: aws.String(IndexDocument)},
	}
	if errorPage != "" {
		cfg.ErrorDocument = &types.ErrorDocument{Key: aws.String(errorPage)}
	}

	_, err := s.website.PutBucketWebsite(ctx, &s3.PutBucketWebsiteInput{
		Bucket:               aws.String(bucket),
		WebsiteConfiguration: cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to enable website on bucket %s: %w", bucket, mapWebsiteError(err))
	}

	s.logger.Info("Enabled website hosting",
		zap.String("bucket", bucket),
		zap.String("error_page", errorPage))
	return nil
}

// IsWebsiteEnabled reports whether bucket has a website configuration.
func (s *Service) IsWebsiteEnabled(ctx context.Context, bucket string) (bool, error) {
	if s.website == nil {
		return false, ErrWebsiteUnsupported
	}

	_, err := s.website.GetBucketWebsite(ctx, &s3.GetBucketWebsiteInput{Bucket: aws.String(bucket)})
	if err == nil {
		return true, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchWebsiteConfiguration" {
		return false, nil
	}
	return false, fmt.Errorf("failed to read website configuration of bucket %s: %w", bucket, mapWebsiteError(err))
}

func mapWebsiteError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucket" {
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	}
	return err
}
