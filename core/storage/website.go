package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// defaultWebsiteRegion is used when no region is configured; the AWS SDK
// refuses to sign requests without one.
const defaultWebsiteRegion = "us-east-1"

// WebsiteAPI covers the bucket website-hosting calls. The minio client has no
// website configuration support, so these go through the AWS SDK.
// *s3.Client satisfies it.
type WebsiteAPI interface {
	PutBucketWebsite(ctx context.Context, params *s3.PutBucketWebsiteInput, optFns ...func(*s3.Options)) (*s3.PutBucketWebsiteOutput, error)
	GetBucketWebsite(ctx context.Context, params *s3.GetBucketWebsiteInput, optFns ...func(*s3.Options)) (*s3.GetBucketWebsiteOutput, error)
}

// NewWebsiteClient creates an AWS S3 client for website configuration calls.
func NewWebsiteClient(ctx context.Context, cfg Config, creds Credentials) (WebsiteAPI, error) {
	region := cfg.Region
	if region == "" {
		region = defaultWebsiteRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(newWebsiteHTTPClient(cfg.TimeoutSeconds)),
		awsconfig.WithCredentialsProvider(
			awscredentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if endpoint := websiteEndpoint(cfg); endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, s3Opts...), nil
}

// newWebsiteHTTPClient applies the storage timeouts to the SDK's buildable
// client. LoadDefaultConfig needs that type to install an AWS_CA_BUNDLE.
func newWebsiteHTTPClient(timeoutSeconds int) *awshttp.BuildableClient {
	timeout := connectTimeout(timeoutSeconds)
	return awshttp.NewBuildableClient().
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = timeout
			d.KeepAlive = 30 * time.Second
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.TLSHandshakeTimeout = timeout
			tr.ResponseHeaderTimeout = timeout
		})
}

// websiteEndpoint returns the custom endpoint URL for non-AWS services, or ""
// to let the SDK resolve the regional AWS endpoint.
func websiteEndpoint(cfg Config) string {
	host := strings.TrimPrefix(cfg.Endpoint, "http://")
	host = strings.TrimPrefix(host, "https://")
	if host == "" || strings.HasSuffix(host, "amazonaws.com") {
		return ""
	}
	if cfg.UseSSL {
		return "https://" + host
	}
	return "http://" + host
}
