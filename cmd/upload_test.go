package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"minio-upload/feature/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearStorageEnv(t *testing.T) {
	for _, key := range []string{"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_DEFAULT_BUCKET", "DATABASE_ENABLED"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestUploadText_MissingConfiguration(t *testing.T) {
	clearStorageEnv(t)

	RootCmd.SetArgs([]string{"upload", "text", "hello", "--name", "notes.txt"})
	RootCmd.SetOut(new(bytes.Buffer))
	err := RootCmd.Execute()

	assert.ErrorIs(t, err, upload.ErrConfiguration)
}

func TestUploadFile_MissingFile(t *testing.T) {
	clearStorageEnv(t)

	RootCmd.SetArgs([]string{"upload", "file", filepath.Join(t.TempDir(), "nope.bin")})
	err := RootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, &upload.Result{Bucket: "demo", ObjectName: "k", Size: 1}))

	assert.Contains(t, buf.String(), `"bucket": "demo"`)
	assert.Contains(t, buf.String(), `"version_id": null`)
}
