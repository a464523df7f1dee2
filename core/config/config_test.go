package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"bucket-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "s3.amazonaws.com", cfg.Storage.Endpoint)
		assert.True(t, cfg.Storage.UseSSL)
		assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
		assert.Equal(t, "AwsCredentials.properties", cfg.Storage.CredentialsFile)
		assert.False(t, cfg.Storage.StrictBucketNames)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 3306, cfg.Database.Port)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
		t.Setenv("STORAGE_USE_SSL", "false")
		t.Setenv("STORAGE_STRICT_BUCKET_NAMES", "true")
		t.Setenv("DATABASE_PORT", "3307")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
		assert.False(t, cfg.Storage.UseSSL)
		assert.True(t, cfg.Storage.StrictBucketNames)
		assert.Equal(t, 3307, cfg.Database.Port)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "storage:\n  bucket: www.example.com\nlog:\n  format: json\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "www.example.com", cfg.Storage.Bucket)
		assert.Equal(t, "json", cfg.Log.Format)
	})
}
