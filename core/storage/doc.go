// Package storage provides the SDK plumbing for S3-compatible object storage.
//
// It wraps the MinIO Go client behind the Client interface for bucket and
// object calls, and the AWS SDK behind WebsiteAPI for website-hosting
// configuration, which MinIO does not expose. Both work against AWS S3 and
// self-hosted MinIO instances.
//
// # Credentials
//
// ResolveCredentials checks, in order, the accessKey/secretKey environment
// variables, the configured keys and the AwsCredentials.properties file. The
// resolved pair is passed explicitly to NewClient and NewWebsiteClient.
//
// # Client Interface
//
// The interfaces abstract the underlying providers so storage interactions
// can be mocked in unit tests (see core/storage/mocks).
//
// # Usage
//
//	creds, err := storage.ResolveCredentials(cfg.Storage)
//	client, err := storage.NewClient(cfg.Storage, creds)
//	website, err := storage.NewWebsiteClient(ctx, cfg.Storage, creds)
package storage
