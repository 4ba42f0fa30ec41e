package cmd

import (
	"fmt"
	"os"

	"minio-upload/core/config"
	"minio-upload/core/database"
	"minio-upload/core/logger"
	"minio-upload/core/storage"
	"minio-upload/feature/audit"
	"minio-upload/feature/upload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "minio-upload",
	Short: "MinIO upload tool server",
	Long: `minio-upload exposes upload tools that store base64 or text content
as objects in MinIO or any S3-compatible store. The tools are served over
MCP (stdio) for agents and over HTTP, and can be run once from the CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// bootstrap loads the .env file, the configuration and the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	config.LoadEnvFile(".")

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// newUploadService builds the upload service, attaching the audit ledger
// when the database is enabled. The returned func releases the connection.
func newUploadService(cfg *config.Config, logg *zap.Logger) (*upload.Service, func()) {
	var opts []upload.Option
	cleanup := func() {}

	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed, uploads will not be audited", zap.Error(err))
		} else {
			store := audit.NewStore(db)
			if err := store.Migrate(); err != nil {
				logg.Warn("Audit ledger migration failed, uploads will not be audited", zap.Error(err))
			} else {
				opts = append(opts, upload.WithRecorder(store))
				logg.Info("Upload audit ledger enabled", zap.String("database", cfg.Database.Name))
			}
			cleanup = func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}
		}
	}

	return upload.NewService(config.ResolveStorage, storage.NewClient, logg, opts...), cleanup
}
