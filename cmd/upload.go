package cmd

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minio-upload/feature/upload"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var (
	// Flags shared by the upload subcommands
	uploadName        string
	uploadBucket      string
	uploadObject      string
	uploadContentType string
)

// uploadCmd is the parent command for one-shot uploads.
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload content once and print the result",
	Long: `Runs one upload through the same adapters the tool servers use and prints
the stored object's metadata as JSON.`,
}

// uploadTextCmd uploads a text argument.
var uploadTextCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "Upload text as UTF-8",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc, cleanup := newUploadService(cfg, logg)
		defer cleanup()

		res, err := svc.UploadText(cmd.Context(), upload.TextInput{
			Text:        args[0],
			FileName:    uploadName,
			Bucket:      uploadBucket,
			ObjectName:  uploadObject,
			ContentType: uploadContentType,
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), res)
	},
}

// uploadFileCmd uploads a local file through the base64 adapter.
var uploadFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc, cleanup := newUploadService(cfg, logg)
		defer cleanup()

		name := uploadName
		if name == "" {
			name = filepath.Base(args[0])
		}

		res, err := svc.UploadBase64(cmd.Context(), upload.Base64Input{
			FileName:      name,
			ContentBase64: base64.StdEncoding.EncodeToString(data),
			Bucket:        uploadBucket,
			ObjectName:    uploadObject,
			ContentType:   uploadContentType,
		})
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), res)
	},
}

func printResult(w io.Writer, res *upload.Result) error {
	data, err := jsoniter.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	for _, c := range []*cobra.Command{uploadTextCmd, uploadFileCmd} {
		c.Flags().StringVar(&uploadName, "name", "", "File name used to derive the object key")
		c.Flags().StringVar(&uploadBucket, "bucket", "", "Target bucket (defaults to MINIO_DEFAULT_BUCKET)")
		c.Flags().StringVar(&uploadObject, "object", "", "Explicit object key")
		c.Flags().StringVar(&uploadContentType, "content-type", "", "Content type stored with the object")
		uploadCmd.AddCommand(c)
	}

	RootCmd.AddCommand(uploadCmd)
}
