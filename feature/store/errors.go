package store

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrBucketAlreadyExists is returned when creating a bucket whose name is taken.
	ErrBucketAlreadyExists = errors.New("bucket already exists")
	// ErrBucketNotFound is returned when the bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrBucketNotEmpty is returned when a bucket still holds objects on removal.
	ErrBucketNotEmpty = errors.New("bucket not empty")
	// ErrObjectNotFound is returned when no object matches the key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrTransferFailed wraps any service or transport error during upload or download.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrTimestampSync is returned when an upload succeeded but the local file
	// timestamp could not be aligned with the remote one.
	ErrTimestampSync = errors.New("timestamp sync failed")
	// ErrPartialDelete is returned when emptying a bucket left objects behind.
	ErrPartialDelete = errors.New("bucket only partially emptied")
	// ErrInvalidBucketName is returned when a bucket name cannot be used as given.
	ErrInvalidBucketName = errors.New("invalid bucket name")
	// ErrUnknownLength is returned for stream uploads without a known length.
	ErrUnknownLength = errors.New("content length must be known")
	// ErrWebsiteUnsupported is returned when no website client is configured.
	ErrWebsiteUnsupported = errors.New("website configuration not available")
)

// mapError attaches the matching sentinel to an S3 error response so callers
// can use errors.Is. Unrecognized errors are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return err
	}

	switch resp.Code {
	case "NoSuchBucket":
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	case "NoSuchKey":
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return fmt.Errorf("%w: %w", ErrBucketAlreadyExists, err)
	case "BucketNotEmpty":
		return fmt.Errorf("%w: %w", ErrBucketNotEmpty, err)
	}

	// HEAD requests carry no error body, only the status
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}
	return err
}
