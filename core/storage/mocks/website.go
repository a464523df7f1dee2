package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// WebsiteAPI is a mock implementation of storage.WebsiteAPI
type WebsiteAPI struct {
	mock.Mock
}

func (m *WebsiteAPI) PutBucketWebsite(ctx context.Context, params *s3.PutBucketWebsiteInput, optFns ...func(*s3.Options)) (*s3.PutBucketWebsiteOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.PutBucketWebsiteOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WebsiteAPI) GetBucketWebsite(ctx context.Context, params *s3.GetBucketWebsiteInput, optFns ...func(*s3.Options)) (*s3.GetBucketWebsiteOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetBucketWebsiteOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
