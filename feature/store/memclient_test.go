package store_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

type memObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

// memClient is an in-memory storage.Client.
type memClient struct {
	mu       sync.Mutex
	buckets  map[string]map[string]memObject
	policies map[string]string
	now      time.Time
	// failRemove lists keys whose deletion fails.
	failRemove map[string]bool
}

func newMemClient(buckets ...string) *memClient {
	m := &memClient{
		buckets:    make(map[string]map[string]memObject),
		policies:   make(map[string]string),
		now:        time.Date(2023, 3, 14, 15, 9, 26, 0, time.UTC),
		failRemove: make(map[string]bool),
	}
	for _, b := range buckets {
		m.buckets[b] = make(map[string]memObject)
	}
	return m
}

func noSuchBucket(bucket string) error {
	return minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound, BucketName: bucket}
}

func noSuchKey(bucket, key string) error {
	return minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound, BucketName: bucket, Key: key}
}

func (m *memClient) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []minio.BucketInfo
	for name := range m.buckets {
		out = append(out, minio.BucketInfo{Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.buckets[bucketName]
	return ok, nil
}

func (m *memClient) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucketName]; ok {
		return minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou", StatusCode: http.StatusConflict}
	}
	m.buckets[bucketName] = make(map[string]memObject)
	return nil
}

func (m *memClient) RemoveBucket(ctx context.Context, bucketName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucketName]
	if !ok {
		return noSuchBucket(bucketName)
	}
	if len(objects) > 0 {
		return minio.ErrorResponse{Code: "BucketNotEmpty", StatusCode: http.StatusConflict}
	}
	delete(m.buckets, bucketName)
	return nil
}

func (m *memClient) SetBucketPolicy(ctx context.Context, bucketName, policy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[bucketName]; !ok {
		return noSuchBucket(bucketName)
	}
	m.policies[bucketName] = policy
	return nil
}

func (m *memClient) GetBucketLocation(ctx context.Context, bucketName string) (string, error) {
	if ok, _ := m.BucketExists(ctx, bucketName); !ok {
		return "", noSuchBucket(bucketName)
	}
	return "us-east-1", nil
}

func (m *memClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucketName]
	if !ok {
		return minio.UploadInfo{}, noSuchBucket(bucketName)
	}
	objects[objectName] = memObject{data: data, contentType: opts.ContentType, modified: m.now}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, ETag: "etag-" + objectName, Size: int64(len(data))}, nil
}

func (m *memClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucketName]
	if !ok {
		return nil, noSuchBucket(bucketName)
	}
	obj, ok := objects[objectName]
	if !ok {
		return nil, noSuchKey(bucketName, objectName)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (m *memClient) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucketName]
	if !ok {
		return minio.ObjectInfo{}, noSuchBucket(bucketName)
	}
	obj, ok := objects[objectName]
	if !ok {
		return minio.ObjectInfo{}, noSuchKey(bucketName, objectName)
	}
	return minio.ObjectInfo{Key: objectName, Size: int64(len(obj.data)), ContentType: obj.contentType, LastModified: obj.modified}, nil
}

func (m *memClient) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	m.mu.Lock()
	objects, ok := m.buckets[bucketName]
	var infos []minio.ObjectInfo
	for key, obj := range objects {
		if strings.HasPrefix(key, opts.Prefix) {
			infos = append(infos, minio.ObjectInfo{Key: key, Size: int64(len(obj.data)), LastModified: obj.modified})
		}
	}
	m.mu.Unlock()
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })

	ch := make(chan minio.ObjectInfo, len(infos)+1)
	if !ok {
		ch <- minio.ObjectInfo{Err: noSuchBucket(bucketName)}
	}
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func (m *memClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucketName]
	if !ok {
		return noSuchBucket(bucketName)
	}
	if m.failRemove[objectName] {
		return minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}
	}
	delete(objects, objectName)
	return nil
}

func (m *memClient) EndpointURL() *url.URL {
	return &url.URL{Scheme: "https", Host: "s3.amazonaws.com"}
}

func (m *memClient) keys(bucket string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.buckets[bucket] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
