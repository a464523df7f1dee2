package journal

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bucket-manager/feature/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleRecent(t *testing.T) {
	repo := setupSQLite(t)
	require.NoError(t, repo.Record(context.Background(), store.Transfer{Operation: store.OpUpload, Bucket: "assets", Key: "a.txt"}))
	require.NoError(t, repo.Record(context.Background(), store.Transfer{Operation: store.OpUpload, Bucket: "other", Key: "b.txt"}))

	feature := NewFeature(repo, zap.NewNop())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/journal?bucket=assets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Records []TransferRecord `json:"records"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "a.txt", body.Records[0].Key)
}

func TestFeature_DisabledWithoutRepository(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())
}
