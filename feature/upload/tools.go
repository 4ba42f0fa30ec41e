package upload

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Base64Tool describes the decode-and-upload tool.
func Base64Tool() mcp.Tool {
	return mcp.NewTool(ToolUploadBase64,
		mcp.WithDescription("Upload base64-encoded file content to MinIO and return the stored object's metadata."),
		mcp.WithString("file_name", mcp.Required(),
			mcp.Description("Original file name, used to derive the object key.")),
		mcp.WithString("content_base64", mcp.Required(),
			mcp.Description("File content encoded as standard, padded base64.")),
		mcp.WithString("bucket",
			mcp.Description("Target bucket. Defaults to MINIO_DEFAULT_BUCKET.")),
		mcp.WithString("object_name",
			mcp.Description("Explicit object key. Generated from file_name when omitted.")),
		mcp.WithString("content_type",
			mcp.DefaultString(DefaultBinaryContentType),
			mcp.Description("Content type stored with the object.")),
	)
}

// TextTool describes the encode-text-and-upload tool.
func TextTool() mcp.Tool {
	return mcp.NewTool(ToolUploadText,
		mcp.WithDescription("Upload text content to MinIO as UTF-8 and return the stored object's metadata."),
		mcp.WithString("text", mcp.Required(),
			mcp.Description("Text to store.")),
		mcp.WithString("file_name", mcp.Required(),
			mcp.Description("Original file name, used to derive the object key.")),
		mcp.WithString("bucket",
			mcp.Description("Target bucket. Defaults to MINIO_DEFAULT_BUCKET.")),
		mcp.WithString("object_name",
			mcp.Description("Explicit object key. Generated from file_name when omitted.")),
		mcp.WithString("content_type",
			mcp.DefaultString(DefaultTextContentType),
			mcp.Description("Content type stored with the object.")),
	)
}

// RegisterTools adds both upload tools to an MCP server.
func (s *Service) RegisterTools(srv *server.MCPServer) {
	srv.AddTool(Base64Tool(), s.handleUploadBase64)
	srv.AddTool(TextTool(), s.handleUploadText)
}

func (s *Service) handleUploadBase64(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := req.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content_base64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.UploadBase64(ctx, Base64Input{
		FileName:      fileName,
		ContentBase64: content,
		Bucket:        req.GetString("bucket", ""),
		ObjectName:    req.GetString("object_name", ""),
		ContentType:   req.GetString("content_type", DefaultBinaryContentType),
	})
	return toolResult(res, err)
}

func (s *Service) handleUploadText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fileName, err := req.RequireString("file_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.UploadText(ctx, TextInput{
		Text:        text,
		FileName:    fileName,
		Bucket:      req.GetString("bucket", ""),
		ObjectName:  req.GetString("object_name", ""),
		ContentType: req.GetString("content_type", DefaultTextContentType),
	})
	return toolResult(res, err)
}

// toolResult reports failures as tool errors so the calling agent sees the message.
func toolResult(res *Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := jsonAPI.Marshal(res)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
