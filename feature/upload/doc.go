// Package upload implements the upload tools.
//
// Two entry points store caller data as objects in an S3-compatible store and
// return the stored object's metadata:
//
//   - upload_base64_to_minio: decodes strict base64 and uploads the bytes.
//   - upload_text_to_minio: uploads text as UTF-8.
//
// # Components
//
//   - KeyGenerator: builds {prefix}/YYYY/MM/DD/{32 hex}_{safe name} keys. File names
//     are reduced to their last path segment and stripped of unsafe characters.
//   - Provisioner: checks the target bucket and creates it when MINIO_AUTO_CREATE_BUCKET allows.
//   - Service: resolves configuration per call, provisions, puts and assembles a Result.
//   - Tools: MCP tool definitions and handlers (RegisterTools).
//   - Handler: the same adapters over HTTP (POST /upload/base64, POST /upload/text).
//
// # Errors
//
// Every failure wraps one of ErrConfiguration, ErrValidation or ErrStorage.
// Storage errors also keep the client's original error reachable via errors.As.
// A bucket created during a failed upload is not removed.
package upload
