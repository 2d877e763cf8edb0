package worker

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient() (*Client, *httpmock.MockTransport) {
	mt := httpmock.NewMockTransport()
	c := NewClient("http://worker.test", time.Second)
	c.SetTransport(mt)
	return c, mt
}

func TestClient_UpdateEmbedding(t *testing.T) {
	c, mt := newMockedClient()

	var payload map[string]interface{}
	mt.RegisterResponder("POST", "http://worker.test/update-embedding",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, sonic.Unmarshal(body, &payload))
			return httpmock.NewStringResponse(http.StatusOK, `{"status":"ok"}`), nil
		})

	err := c.UpdateEmbedding(context.Background(), 42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, payload["document_id"])
}

func TestClient_UpdateBotSettings(t *testing.T) {
	c, mt := newMockedClient()

	var payload map[string]interface{}
	mt.RegisterResponder("POST", "http://worker.test/update-bot-settings",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, sonic.Unmarshal(body, &payload))
			return httpmock.NewStringResponse(http.StatusOK, `{"status":"ok"}`), nil
		})

	require.NoError(t, c.UpdateBotSettings(context.Background(), true))
	assert.EqualValues(t, 1, payload["is_bot"])

	require.NoError(t, c.UpdateBotSettings(context.Background(), false))
	assert.EqualValues(t, 0, payload["is_bot"])
}

func TestClient_ProcessFile(t *testing.T) {
	c, mt := newMockedClient()

	var payload map[string]interface{}
	mt.RegisterResponder("POST", "http://worker.test/process-file",
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NoError(t, sonic.Unmarshal(body, &payload))
			return httpmock.NewStringResponse(http.StatusOK, `{"status":"accepted"}`), nil
		})

	err := c.ProcessFile(context.Background(), ProcessFileReq{
		FileID:          "f1",
		FileName:        "guide.pdf",
		FilePath:        "http://minio/coaching-files/guide.pdf",
		FileType:        "pdf",
		FileStoragePath: "123-abc.pdf",
		UserID:          "op1",
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", payload["file_id"])
	assert.Equal(t, "123-abc.pdf", payload["file_storage_path"])
}

func TestClient_WorkerRejected(t *testing.T) {
	c, mt := newMockedClient()

	mt.RegisterResponder("POST", "http://worker.test/update-embedding",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error":"boom"}`))

	err := c.UpdateEmbedding(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWorkerRejected))
}

func TestClient_WorkerUnreachable(t *testing.T) {
	c, mt := newMockedClient()
	// 不注册任何responder，请求直接失败
	_ = mt

	err := c.UpdateEmbedding(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWorkerUnreachable))
}
