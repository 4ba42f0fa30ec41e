package upload

import (
	"context"
	"encoding/base64"
	"strings"
)

const (
	// ToolUploadBase64 is the name of the decode-and-upload tool.
	ToolUploadBase64 = "upload_base64_to_minio"
	// ToolUploadText is the name of the encode-text-and-upload tool.
	ToolUploadText = "upload_text_to_minio"

	// DefaultBinaryContentType applies to base64 uploads without a content type.
	DefaultBinaryContentType = "application/octet-stream"
	// DefaultTextContentType applies to text uploads without a content type.
	DefaultTextContentType = "text/plain; charset=utf-8"
)

// Base64Input holds the arguments of the base64 upload tool.
type Base64Input struct {
	FileName      string `json:"file_name"`
	ContentBase64 string `json:"content_base64"`
	Bucket        string `json:"bucket,omitempty"`
	ObjectName    string `json:"object_name,omitempty"`
	ContentType   string `json:"content_type,omitempty"`
}

// TextInput holds the arguments of the text upload tool.
type TextInput struct {
	Text        string `json:"text"`
	FileName    string `json:"file_name"`
	Bucket      string `json:"bucket,omitempty"`
	ObjectName  string `json:"object_name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// DecodeBase64 decodes standard, padded base64. Line breaks, foreign
// characters and non-canonical trailing bits are rejected.
func DecodeBase64(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, validationError("content_base64 is not valid base64: illegal line break at input byte %d", i)
	}
	data, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, validationError("content_base64 is not valid base64: %v", err)
	}
	return data, nil
}

// UploadBase64 decodes in.ContentBase64 and uploads the bytes.
func (s *Service) UploadBase64(ctx context.Context, in Base64Input) (*Result, error) {
	data, err := DecodeBase64(in.ContentBase64)
	if err != nil {
		return nil, err
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = DefaultBinaryContentType
	}

	return s.Upload(ctx, Request{
		Data:        data,
		FileName:    in.FileName,
		Bucket:      in.Bucket,
		ObjectName:  in.ObjectName,
		ContentType: contentType,
		Tool:        ToolUploadBase64,
	})
}

// UploadText uploads in.Text as UTF-8 bytes.
func (s *Service) UploadText(ctx context.Context, in TextInput) (*Result, error) {
	contentType := in.ContentType
	if contentType == "" {
		contentType = DefaultTextContentType
	}

	return s.Upload(ctx, Request{
		Data:        []byte(in.Text),
		FileName:    in.FileName,
		Bucket:      in.Bucket,
		ObjectName:  in.ObjectName,
		ContentType: contentType,
		Tool:        ToolUploadText,
	})
}
