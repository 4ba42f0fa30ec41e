package upload

import (
	"context"
	"encoding/base64"
	"io"
	"math/rand"
	"testing"

	"minio-upload/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n <= 64; n++ {
		data := make([]byte, n)
		rng.Read(data)

		got, err := DecodeBase64(base64.StdEncoding.EncodeToString(data))
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, data, got, "length %d", n)
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"Garbage", "not-base64-%%%"},
		{"MissingPadding", "aGVsbG8"},
		{"NonCanonical", "aGVsbG9="},
		{"URLAlphabet", "-_-_"},
		{"LineBreak", "aGVs\nbG8="},
		{"Whitespace", "aGVs bG8="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeBase64(tt.in)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), "content_base64 is not valid base64")
		})
	}
}

func TestService_UploadBase64(t *testing.T) {
	f := newFixture(baseConfig())
	payload := []byte{0x00, 0xff, 0x10, 0x80}
	var body []byte

	f.client.On("BucketExists", mock.Anything, "demo").Return(true, nil)
	f.client.On("PutObject", mock.Anything, "demo", mock.Anything, mock.Anything, int64(4), DefaultBinaryContentType).
		Run(func(args mock.Arguments) {
			body, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(storage.UploadInfo{ETag: "e"}, nil)

	res, err := f.svc.UploadBase64(context.Background(), Base64Input{
		FileName:      "blob.bin",
		ContentBase64: base64.StdEncoding.EncodeToString(payload),
	})
	require.NoError(t, err)

	assert.Equal(t, payload, body)
	assert.Equal(t, int64(4), res.Size)
	assert.Equal(t, DefaultBinaryContentType, res.ContentType)
	assert.Regexp(t, `^uploads/\d{4}/\d{2}/\d{2}/[0-9a-f]{32}_blob\.bin$`, res.ObjectName)
}

func TestService_UploadBase64_CustomContentType(t *testing.T) {
	f := newFixture(baseConfig())
	f.client.On("BucketExists", mock.Anything, "demo").Return(true, nil)
	f.client.On("PutObject", mock.Anything, "demo", "img/logo.png", mock.Anything, int64(3), "image/png").
		Return(storage.UploadInfo{ETag: "e"}, nil)

	res, err := f.svc.UploadBase64(context.Background(), Base64Input{
		FileName:      "logo.png",
		ContentBase64: "iVBO",
		ObjectName:    "img/logo.png",
		ContentType:   "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "img/logo.png", res.ObjectName)
	assert.Equal(t, "image/png", res.ContentType)
}

func TestService_UploadBase64_InvalidSkipsConfiguration(t *testing.T) {
	f := newFixture(baseConfig())

	_, err := f.svc.UploadBase64(context.Background(), Base64Input{FileName: "x", ContentBase64: "not-base64-%%%"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, f.resolve)
	f.assertNoStorageCalls(t)
}

func TestService_UploadBase64_EmptyPayload(t *testing.T) {
	f := newFixture(baseConfig())

	_, err := f.svc.UploadBase64(context.Background(), Base64Input{FileName: "x", ContentBase64: ""})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "empty")
	f.assertNoStorageCalls(t)
}

func TestService_UploadText_MultibyteSize(t *testing.T) {
	f := newFixture(baseConfig())
	f.client.On("BucketExists", mock.Anything, "demo").Return(true, nil)
	f.client.On("PutObject", mock.Anything, "demo", mock.Anything, mock.Anything, int64(6), DefaultTextContentType).
		Return(storage.UploadInfo{}, nil)

	res, err := f.svc.UploadText(context.Background(), TextInput{Text: "你好", FileName: "hi.txt"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Size)
}
