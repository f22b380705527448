// Package config provides centralized configuration defaults for tomatolog.
// All default values should be defined here to ensure a single source of truth.
package config

import (
	"time"

	"github.com/spf13/viper"

	"tomatolog/internal/extract"
	"tomatolog/types"
)

const (
	// DefaultServerPort matches the port the legacy agent server used, so
	// existing front ends keep working.
	DefaultServerPort = 8000

	// DefaultLockTimeoutSeconds bounds the wait for the ledger file lock.
	DefaultLockTimeoutSeconds = 10
)

// SetDefaults seeds viper with the built-in configuration.
func SetDefaults() {
	viper.SetDefault("data.file", "")
	viper.SetDefault("data.lockTimeoutSeconds", DefaultLockTimeoutSeconds)
	viper.SetDefault("llm.baseUrl", extract.DefaultBaseURL)
	viper.SetDefault("llm.modelName", extract.DefaultModel)
	viper.SetDefault("llm.requestTimeoutSeconds", 60)
	viper.SetDefault("server.port", DefaultServerPort)
}

// LockTimeout converts the configured bound into a duration.
func LockTimeout(cfg *types.AppConfig) time.Duration {
	if cfg.Data.LockTimeoutSeconds <= 0 {
		return DefaultLockTimeoutSeconds * time.Second
	}
	return time.Duration(cfg.Data.LockTimeoutSeconds) * time.Second
}

// ExtractConfig maps the app config onto the extraction client settings.
func ExtractConfig(cfg *types.AppConfig) extract.Config {
	return extract.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.ModelName,
		APIKey:  cfg.LLM.APIKey,
		Timeout: time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
	}
}
