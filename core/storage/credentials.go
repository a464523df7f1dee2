package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvAccessKey names the environment variable holding the access key ID.
	EnvAccessKey = "accessKey"
	// EnvSecretKey names the environment variable holding the secret key.
	EnvSecretKey = "secretKey"

	propertyAccessKey = "accessKey"
	propertySecretKey = "secretKey"
)

// ErrCredentialsMissing is returned when no credential source provides both keys.
var ErrCredentialsMissing = errors.New("storage credentials missing")

// Credentials is an access key pair. It is resolved once and passed to the
// clients that need it.
type Credentials struct {
	AccessKey string
	SecretKey string
}

func (c Credentials) complete() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// ResolveCredentials looks up credentials in order: the accessKey/secretKey
// environment variables, the configured keys, then the properties file named
// by cfg.CredentialsFile.
func ResolveCredentials(cfg Config) (Credentials, error) {
	env := Credentials{
		AccessKey: os.Getenv(EnvAccessKey),
		SecretKey: os.Getenv(EnvSecretKey),
	}
	if env.complete() {
		return env, nil
	}

	configured := Credentials{AccessKey: cfg.AccessKey, SecretKey: cfg.SecretKey}
	if configured.complete() {
		return configured, nil
	}

	if cfg.CredentialsFile == "" {
		return Credentials{}, ErrCredentialsMissing
	}
	return readPropertiesFile(cfg.CredentialsFile)
}

// readPropertiesFile parses a key=value properties file.
func readPropertiesFile(path string) (Credentials, error) {
	props, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, fmt.Errorf("%w: no environment credentials and %s not found", ErrCredentialsMissing, path)
		}
		return Credentials{}, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	creds := Credentials{
		AccessKey: props[propertyAccessKey],
		SecretKey: props[propertySecretKey],
	}
	if !creds.complete() {
		return Credentials{}, fmt.Errorf("%w: %s must define %s and %s", ErrCredentialsMissing, path, propertyAccessKey, propertySecretKey)
	}
	return creds, nil
}
