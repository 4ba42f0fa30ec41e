// Package config provides configuration management for the upload server.
//
// It utilizes Viper for loading configuration from environment variables and
// godotenv for pre-populating the environment from a local .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and MCP server identity
//   - Minio: endpoint, credentials, bucket and key settings (MINIO_*)
//   - Database: optional audit ledger connection (DATABASE_*)
//   - Log: Logging level and format
//
// Boolean settings accept 1, true, yes and on (any case) as enabled.
// Unset settings take the value of the struct's default tag.
//
// # Usage
//
//	config.LoadEnvFile(".")
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Minio.Endpoint)
package config
