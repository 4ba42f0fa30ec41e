package upload

import (
	"context"
	"testing"

	"minio-upload/core/storage"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestTools_UploadText(t *testing.T) {
	f := newFixture(baseConfig())
	f.client.On("BucketExists", mock.Anything, "demo").Return(true, nil)
	f.client.On("PutObject", mock.Anything, "demo", mock.Anything, mock.Anything, int64(5), DefaultTextContentType).
		Return(storage.UploadInfo{ETag: "5d41402abc4b2a76b9719d911017c592"}, nil)

	res, err := f.svc.handleUploadText(context.Background(), callRequest(ToolUploadText, map[string]any{
		"text":      "hello",
		"file_name": "notes.txt",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var body map[string]any
	require.NoError(t, jsonAPI.UnmarshalFromString(resultText(t, res), &body))

	assert.Equal(t, "demo", body["bucket"])
	assert.Regexp(t, notesKey, body["object_name"])
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", body["etag"])
	assert.Contains(t, body, "version_id")
	assert.Nil(t, body["version_id"])
	assert.Equal(t, float64(5), body["size"])
	assert.Equal(t, DefaultTextContentType, body["content_type"])
	assert.Equal(t, "http://localhost:9000/demo/"+body["object_name"].(string), body["url"])
}

func TestTools_UploadBase64(t *testing.T) {
	f := newFixture(baseConfig())
	f.client.On("BucketExists", mock.Anything, "archive").Return(true, nil)
	f.client.On("PutObject", mock.Anything, "archive", "fixed/key.bin", mock.Anything, int64(5), DefaultBinaryContentType).
		Return(storage.UploadInfo{ETag: "e", VersionID: "v9"}, nil)

	res, err := f.svc.handleUploadBase64(context.Background(), callRequest(ToolUploadBase64, map[string]any{
		"file_name":      "ignored.bin",
		"content_base64": "aGVsbG8=",
		"bucket":         "archive",
		"object_name":    "fixed/key.bin",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var body Result
	require.NoError(t, jsonAPI.UnmarshalFromString(resultText(t, res), &body))
	assert.Equal(t, "fixed/key.bin", body.ObjectName)
	require.NotNil(t, body.VersionID)
	assert.Equal(t, "v9", *body.VersionID)
}

func TestTools_Errors(t *testing.T) {
	t.Run("MissingArgument", func(t *testing.T) {
		f := newFixture(baseConfig())
		res, err := f.svc.handleUploadText(context.Background(), callRequest(ToolUploadText, map[string]any{
			"file_name": "notes.txt",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		f.assertNoStorageCalls(t)
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		f := newFixture(baseConfig())
		res, err := f.svc.handleUploadBase64(context.Background(), callRequest(ToolUploadBase64, map[string]any{
			"file_name":      "x.bin",
			"content_base64": "not-base64-%%%",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "validation error")
	})

	t.Run("MissingBucket", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DefaultBucket = ""
		f := newFixture(cfg)
		res, err := f.svc.handleUploadText(context.Background(), callRequest(ToolUploadText, map[string]any{
			"text":      "hello",
			"file_name": "notes.txt",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "configuration error")
	})
}

func TestTools_Definitions(t *testing.T) {
	b64 := Base64Tool()
	assert.Equal(t, ToolUploadBase64, b64.Name)
	assert.ElementsMatch(t, []string{"file_name", "content_base64"}, b64.InputSchema.Required)
	assert.Contains(t, b64.InputSchema.Properties, "bucket")
	assert.Contains(t, b64.InputSchema.Properties, "object_name")
	assert.Contains(t, b64.InputSchema.Properties, "content_type")

	text := TextTool()
	assert.Equal(t, ToolUploadText, text.Name)
	assert.ElementsMatch(t, []string{"text", "file_name"}, text.InputSchema.Required)
}

func TestTools_RegisteredOnServer(t *testing.T) {
	f := newFixture(baseConfig())
	srv := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(false))
	f.svc.RegisterTools(srv)

	msg := srv.HandleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := jsonAPI.MarshalToString(msg)
	require.NoError(t, err)

	assert.Contains(t, raw, ToolUploadBase64)
	assert.Contains(t, raw, ToolUploadText)
}
