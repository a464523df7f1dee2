package store_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bucket-manager/core/storage/mocks"
	"bucket-manager/feature/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorderStub struct {
	mu        sync.Mutex
	transfers []store.Transfer
	err       error
}

func (r *recorderStub) Record(ctx context.Context, t store.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers = append(r.transfers, t)
	return r.err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_UploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("SyncsLocalTimestamp", func(t *testing.T) {
		client := newMemClient("assets")
		svc := store.NewService(client, nil, zap.NewNop())
		path := writeFile(t, "site.css", "body{}")

		result, err := svc.UploadFile(ctx, "assets", "///css/site.css", path)
		require.NoError(t, err)
		assert.Equal(t, "css/site.css", result.Key)
		assert.Equal(t, int64(6), result.Size)
		assert.True(t, client.now.Equal(result.LastModified))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, client.now.Equal(info.ModTime()), "local mtime %v, remote %v", info.ModTime(), client.now)

		stat, err := client.StatObject(ctx, "assets", "css/site.css", minio.StatObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, "text/css", stat.ContentType)
	})

	t.Run("SendsMetadata", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything, int64(5), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "text/plain" &&
				opts.ContentEncoding == "utf-8" &&
				opts.UserMetadata["last-modified"] != "" &&
				opts.UserMetadata["x-amz-acl"] == "public-read"
		})).Return(minio.UploadInfo{Bucket: "assets", Key: "docs/readme.txt", ETag: "e1", Size: 5}, nil)
		client.On("StatObject", mock.Anything, "assets", "docs/readme.txt", mock.Anything).
			Return(minio.ObjectInfo{LastModified: time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)}, nil)

		svc := store.NewService(client, nil, zap.NewNop())
		result, err := svc.UploadFile(ctx, "assets", "/docs/readme.txt", writeFile(t, "readme.txt", "hello"), store.WithACL(store.ACLPublicRead))
		require.NoError(t, err)
		assert.Equal(t, "e1", result.ETag)
		client.AssertExpectations(t)
	})

	t.Run("TransferFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "a.txt", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection reset"))
		recorder := &recorderStub{}

		svc := store.NewService(client, nil, zap.NewNop(), store.WithRecorder(recorder))
		result, err := svc.UploadFile(ctx, "assets", "a.txt", writeFile(t, "a.txt", "a"))
		assert.ErrorIs(t, err, store.ErrTransferFailed)
		assert.Equal(t, store.UploadResult{}, result)
		client.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		require.Len(t, recorder.transfers, 1)
		assert.Equal(t, store.OpUpload, recorder.transfers[0].Operation)
		assert.Error(t, recorder.transfers[0].Err)
	})

	t.Run("MissingLocalFile", func(t *testing.T) {
		svc := store.NewService(newMemClient("assets"), nil, zap.NewNop())

		result, err := svc.UploadFile(ctx, "assets", "a.txt", filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, store.ErrTransferFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, store.UploadResult{}, result)
	})

	t.Run("TimestampSyncFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "a.txt", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{Key: "a.txt", ETag: "e"}, nil)
		client.On("StatObject", mock.Anything, "assets", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("throttled"))

		svc := store.NewService(client, nil, zap.NewNop())
		result, err := svc.UploadFile(ctx, "assets", "a.txt", writeFile(t, "a.txt", "a"))
		assert.ErrorIs(t, err, store.ErrTimestampSync)
		assert.NotErrorIs(t, err, store.ErrTransferFailed)
		assert.Equal(t, "e", result.ETag)
	})

	t.Run("ReportsProgress", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "big.bin", mock.Anything, int64(10), mock.Anything).
			Run(func(args mock.Arguments) {
				progress := args.Get(5).(minio.PutObjectOptions).Progress
				require.NotNil(t, progress)
				_, _ = progress.Read(make([]byte, 4))
				_, _ = progress.Read(make([]byte, 6))
			}).
			Return(minio.UploadInfo{Key: "big.bin", Size: 10}, nil)
		client.On("StatObject", mock.Anything, "assets", "big.bin", mock.Anything).
			Return(minio.ObjectInfo{LastModified: time.Now().Truncate(time.Second)}, nil)

		var seen []int64
		svc := store.NewService(client, nil, zap.NewNop())
		_, err := svc.UploadFile(ctx, "assets", "big.bin", writeFile(t, "big.bin", "0123456789"),
			store.WithProgress(func(transferred, total int64) {
				assert.Equal(t, int64(10), total)
				seen = append(seen, transferred)
			}))
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 10}, seen)
	})
}

func TestService_UploadString(t *testing.T) {
	client := newMemClient("www.example.com")
	recorder := &recorderStub{}
	svc := store.NewService(client, nil, zap.NewNop(), store.WithRecorder(recorder))

	result, err := svc.UploadString(context.Background(), "www.example.com", "/index.html", "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, "index.html", result.Key)
	assert.Equal(t, []string{"index.html"}, client.keys("www.example.com"))
	assert.Equal(t, "text/html", client.buckets["www.example.com"]["index.html"].contentType)

	require.Len(t, recorder.transfers, 1)
	assert.Equal(t, "etag-index.html", recorder.transfers[0].ETag)
}

func TestService_UploadStream(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownLength", func(t *testing.T) {
		svc := store.NewService(newMemClient("assets"), nil, zap.NewNop())
		_, err := svc.UploadStream(ctx, "assets", "a.bin", strings.NewReader("x"), -1)
		assert.ErrorIs(t, err, store.ErrUnknownLength)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc := store.NewService(newMemClient(), nil, zap.NewNop())
		_, err := svc.UploadStream(ctx, "assets", "a.bin", strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, store.ErrTransferFailed)
		assert.ErrorIs(t, err, store.ErrBucketNotFound)
	})

	t.Run("JournalErrorIgnored", func(t *testing.T) {
		recorder := &recorderStub{err: errors.New("db down")}
		svc := store.NewService(newMemClient("assets"), nil, zap.NewNop(), store.WithRecorder(recorder))

		_, err := svc.UploadStream(ctx, "assets", "a.bin", strings.NewReader("x"), 1)
		assert.NoError(t, err)
	})
}

func TestService_UploadDownloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := store.NewService(newMemClient("assets"), nil, zap.NewNop())

	contents := []string{"", "hello", strings.Repeat("payload\n", 4096), "ünïcødé"}
	for i, content := range contents {
		key := "/round/trip/" + string(rune('a'+i)) + ".txt"
		_, err := svc.UploadStream(ctx, "assets", key, bytes.NewReader([]byte(content)), int64(len(content)))
		require.NoError(t, err)

		rc, err := svc.DownloadFile(ctx, "assets", key)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, content, string(got))
	}
}
