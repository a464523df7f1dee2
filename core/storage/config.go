package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host (and optional port) of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	// The accessKey environment variable takes precedence.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	// The secretKey environment variable takes precedence.
	SecretKey string `mapstructure:"secret_key" default:""`
	// CredentialsFile is the properties file consulted when no other credentials are set.
	CredentialsFile string `mapstructure:"credentials_file" default:"AwsCredentials.properties"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the default bucket used when a command does not name one.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location new buckets are created in (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// StrictBucketNames rejects bucket names that need sanitizing instead of
	// creating the sanitized name.
	StrictBucketNames bool `mapstructure:"strict_bucket_names" default:"false"`
}
