package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig holds application identity and environment.
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// StorageConfig holds the snapshot persistence configuration.
type StorageConfig struct {
	// Path is the JSON snapshot file the store persists into.
	Path string
	// Reset discards any existing snapshot on startup and reseeds
	// from the built-in catalog.
	Reset bool
}

// Config holds all configuration.
type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
}

// Load reads configuration from environment variables, with a .env
// file honored when present.
func Load() (*Config, error) {
	// .env is optional; environments like CI set variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Warning: could not read .env file: %v\n", err)
	}

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "teddystore"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Path:  getEnv("STORE_FILE", "teddylove-store.json"),
			Reset: getEnvAsBool("STORE_RESET", false),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as zap logger fields.
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("app", c.App.Name),
		zap.String("environment", c.App.Env),
		zap.String("store_file", c.Storage.Path),
		zap.Bool("store_reset", c.Storage.Reset),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
