package store

import (
	"time"

	"github.com/minio/minio-go/v7"
)

// ContentEncoding is applied to every upload.
const ContentEncoding = "utf-8"

// IndexDocument is the index page of website-enabled buckets.
const IndexDocument = "index.html"

// ACL is a canned access control list applied to uploaded objects.
type ACL string

const (
	ACLPublicRead ACL = "public-read"
	ACLPrivate    ACL = "private"
)

// ObjectMetadata describes an object about to be written.
type ObjectMetadata struct {
	ContentType     string
	ContentEncoding string
	ContentLength   int64
	// LastModified is sent along with the object but the service replaces it
	// with the time of the upload.
	LastModified time.Time
}

// UploadResult is the outcome of a successful write.
type UploadResult struct {
	Bucket       string    `json:"bucket"`
	Key          string    `json:"key"`
	ETag         string    `json:"etag"`
	VersionID    string    `json:"version_id,omitempty"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// ObjectSummary is one entry of a bucket listing.
type ObjectSummary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
	StorageClass string    `json:"storage_class,omitempty"`
}

func summaryFromInfo(info minio.ObjectInfo) ObjectSummary {
	return ObjectSummary{
		Key:          info.Key,
		Size:         info.Size,
		ETag:         info.ETag,
		LastModified: info.LastModified,
		StorageClass: info.StorageClass,
	}
}

// SyncStatus compares a remote object with its local copy.
type SyncStatus int

const (
	// RemoteMissing means the object does not exist in the bucket.
	RemoteMissing SyncStatus = -2
	// RemoteOlder means the remote object is older than the local file.
	RemoteOlder SyncStatus = -1
	// Same means both copies carry the same timestamp.
	Same SyncStatus = 0
	// RemoteNewer means the remote object is newer than the local file.
	RemoteNewer SyncStatus = 1
	// LocalMissing means the object exists remotely but not on disk.
	LocalMissing SyncStatus = 2
)

func (s SyncStatus) String() string {
	switch s {
	case RemoteMissing:
		return "remote-missing"
	case RemoteOlder:
		return "remote-older"
	case Same:
		return "same"
	case RemoteNewer:
		return "remote-newer"
	case LocalMissing:
		return "local-missing"
	default:
		return "unknown"
	}
}
