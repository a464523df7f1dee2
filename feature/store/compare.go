package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"bucket-manager/core/utils"

	"github.com/minio/minio-go/v7"
)

// Compare reports how the object stored under key relates to the local file
// at path. Timestamps are compared at one-second resolution, since that is
// all the service keeps.
func (s *Service) Compare(ctx context.Context, bucket, key, path string) (SyncStatus, error) {
	key = utils.TrimLeadingSlashes(key)

	remote, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	remoteMissing := false
	if err != nil {
		if !errors.Is(mapError(err), ErrObjectNotFound) {
			return 0, fmt.Errorf("failed to stat %s/%s: %w", bucket, key, mapError(err))
		}
		remoteMissing = true
	}

	local, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if remoteMissing {
			return RemoteMissing, nil
		}
		return LocalMissing, nil
	}
	if remoteMissing {
		return RemoteMissing, nil
	}

	remoteTime := remote.LastModified.Truncate(time.Second)
	localTime := local.ModTime().Truncate(time.Second)
	switch {
	case remoteTime.Before(localTime):
		return RemoteOlder, nil
	case remoteTime.After(localTime):
		return RemoteNewer, nil
	default:
		return Same, nil
	}
}
