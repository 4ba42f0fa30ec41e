package config

import (
	"reflect"
	"strings"

	"minio-upload/core/database"
	"minio-upload/core/logger"
	"minio-upload/core/server"
	"minio-upload/core/storage"
	"minio-upload/core/utils"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP and MCP servers.
	Server server.Config `mapstructure:"server"`
	// Minio holds configuration for the object storage (e.g., S3, Minio).
	Minio storage.Config `mapstructure:"minio"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional upload audit database.
	Database database.Config `mapstructure:"database"`
}

// LoadEnvFile loads a .env file into the process environment.
// Variables that are already set are left untouched.
func LoadEnvFile(path string) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(envPath)
}

// LoadConfig loads configuration from environment variables.
// It reads the environment afresh on every call and keeps no state between calls.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. MINIO_ENDPOINT -> minio.endpoint)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(switchHook))); err != nil {
		return nil, err
	}

	return &config, nil
}

// switchHook decodes string settings into booleans using the relaxed
// 1/true/yes/on spelling instead of strconv.ParseBool.
func switchHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return utils.IsTruthy(data.(string)), nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// ResolveStorage reloads configuration and returns the storage section.
// It is the per-invocation resolver handed to the upload service.
func ResolveStorage() (storage.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return storage.Config{}, err
	}
	return cfg.Minio, nil
}
