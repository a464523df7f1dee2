package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bucket-manager/core/storage/mocks"
	"bucket-manager/feature/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objectsChan(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		ch <- obj
	}
	close(ch)
	return ch
}

func prefixIs(prefix string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == prefix && opts.Recursive
	})
}

func TestService_ListObjectsByPrefix(t *testing.T) {
	ctx := context.Background()

	t.Run("AllPages", func(t *testing.T) {
		// More objects than one 1000-key page; the SDK channel spans pages
		var objects []minio.ObjectInfo
		for i := 0; i < 2500; i++ {
			objects = append(objects, minio.ObjectInfo{Key: fmt.Sprintf("logs/%04d.log", i), Size: int64(i)})
		}
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", prefixIs("logs/")).Return(objectsChan(objects...))

		svc := store.NewService(client, nil, zap.NewNop())
		lines, err := svc.ListObjectsByPrefix(ctx, "assets", "//logs/")
		require.NoError(t, err)
		require.Len(t, lines, 2500)

		seen := make(map[string]bool, len(lines))
		for _, line := range lines {
			assert.False(t, seen[line], "duplicate %s", line)
			seen[line] = true
		}
		assert.Equal(t, "logs/0000.log (size = 0)", lines[0])
		assert.Equal(t, "logs/2499.log (size = 2499)", lines[2499])
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(objectsChan(
			minio.ObjectInfo{Key: "a"},
			minio.ObjectInfo{Err: errors.New("page fetch failed")},
		))

		svc := store.NewService(client, nil, zap.NewNop())
		lines, err := svc.ListObjectsByPrefix(ctx, "assets", "")
		assert.ErrorContains(t, err, "page fetch failed")
		assert.Nil(t, lines)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc := store.NewService(newMemClient(), nil, zap.NewNop())
		_, err := svc.ListObjectsByPrefix(ctx, "nope", "")
		assert.ErrorIs(t, err, store.ErrBucketNotFound)
	})
}

func TestService_GetAllObjectData(t *testing.T) {
	ctx := context.Background()
	remote := []minio.ObjectInfo{
		{Key: "img//a.png", Size: 1},
		{Key: "img/b.png", Size: 2},
	}

	t.Run("PrefixAdjusted", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", prefixIs("img/")).Return(objectsChan(remote...))

		svc := store.NewService(client, nil, zap.NewNop())
		summaries, err := svc.GetAllObjectData(ctx, "assets", "/img/")
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "img/a.png", summaries[0].Key)
		assert.Equal(t, "img/b.png", summaries[1].Key)
	})

	t.Run("PrefixUnchanged", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "assets", prefixIs("img/")).Return(objectsChan(remote...))

		svc := store.NewService(client, nil, zap.NewNop())
		summaries, err := svc.GetAllObjectData(ctx, "assets", "img/")
		require.NoError(t, err)
		assert.Equal(t, "img//a.png", summaries[0].Key)
		assert.Equal(t, int64(2), summaries[1].Size)
	})
}

func TestService_GetOneObjectData(t *testing.T) {
	ctx := context.Background()
	client := newMemClient("assets")
	svc := store.NewService(client, nil, zap.NewNop())
	for _, key := range []string{"docs/a.txt", "docs/a.txt.bak", "docs/b.txt"} {
		_, err := svc.UploadString(ctx, "assets", key, key)
		require.NoError(t, err)
	}

	t.Run("ExactMatch", func(t *testing.T) {
		summary, err := svc.GetOneObjectData(ctx, "assets", "//docs/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "docs/a.txt", summary.Key)
		assert.Equal(t, int64(len("docs/a.txt")), summary.Size)
	})

	t.Run("PrefixOnly", func(t *testing.T) {
		_, err := svc.GetOneObjectData(ctx, "assets", "docs/")
		assert.ErrorIs(t, err, store.ErrObjectNotFound)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, err := svc.GetOneObjectData(ctx, "assets", "docs/c.txt")
		assert.ErrorIs(t, err, store.ErrObjectNotFound)
	})
}

func TestService_DownloadFile(t *testing.T) {
	ctx := context.Background()
	recorder := &recorderStub{}
	svc := store.NewService(newMemClient("assets"), nil, zap.NewNop(), store.WithRecorder(recorder))

	rc, err := svc.DownloadFile(ctx, "assets", "missing.txt")
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, store.ErrTransferFailed)
	assert.ErrorIs(t, err, store.ErrObjectNotFound)

	require.Len(t, recorder.transfers, 1)
	assert.Equal(t, store.OpDownload, recorder.transfers[0].Operation)
}

func TestService_ResourceURL(t *testing.T) {
	svc := store.NewService(newMemClient(), nil, zap.NewNop())
	assert.Equal(t, "https://s3.amazonaws.com/www.example.com/css/site.css", svc.ResourceURL("www.example.com", "//css//site.css"))

	client := new(mocks.Client)
	client.On("EndpointURL").Return(nil)
	assert.Empty(t, store.NewService(client, nil, zap.NewNop()).ResourceURL("b", "k"))
}
