package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bucket-manager/feature/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Compare(t *testing.T) {
	ctx := context.Background()
	client := newMemClient("assets")
	svc := store.NewService(client, nil, zap.NewNop())
	_, err := svc.UploadString(ctx, "assets", "a.txt", "a")
	require.NoError(t, err)

	local := writeFile(t, "a.txt", "a")
	setMtime := func(ts time.Time) {
		require.NoError(t, os.Chtimes(local, ts, ts))
	}

	t.Run("Same", func(t *testing.T) {
		setMtime(client.now.Add(400 * time.Millisecond))
		status, err := svc.Compare(ctx, "assets", "/a.txt", local)
		require.NoError(t, err)
		assert.Equal(t, store.Same, status)
	})

	t.Run("RemoteOlder", func(t *testing.T) {
		setMtime(client.now.Add(time.Hour))
		status, err := svc.Compare(ctx, "assets", "a.txt", local)
		require.NoError(t, err)
		assert.Equal(t, store.RemoteOlder, status)
	})

	t.Run("RemoteNewer", func(t *testing.T) {
		setMtime(client.now.Add(-time.Hour))
		status, err := svc.Compare(ctx, "assets", "a.txt", local)
		require.NoError(t, err)
		assert.Equal(t, store.RemoteNewer, status)
	})

	t.Run("LocalMissing", func(t *testing.T) {
		status, err := svc.Compare(ctx, "assets", "a.txt", filepath.Join(t.TempDir(), "none"))
		require.NoError(t, err)
		assert.Equal(t, store.LocalMissing, status)
	})

	t.Run("RemoteMissing", func(t *testing.T) {
		status, err := svc.Compare(ctx, "assets", "b.txt", local)
		require.NoError(t, err)
		assert.Equal(t, store.RemoteMissing, status)
		assert.Equal(t, "remote-missing", status.String())
	})
}
