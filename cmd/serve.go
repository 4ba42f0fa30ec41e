package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload tools over MCP stdio",
	Long: `Starts an MCP server on stdin/stdout exposing upload_base64_to_minio and
upload_text_to_minio. Logs are written to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc, cleanup := newUploadService(cfg, logg)
		defer cleanup()

		srv := server.NewMCPServer(cfg.Server.Name, cfg.Server.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		)
		svc.RegisterTools(srv)

		logg.Info("Serving MCP over stdio", zap.String("name", cfg.Server.Name))
		return server.ServeStdio(srv)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
