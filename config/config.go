package config

import (
	"fmt"
	"os"
)

// Config holds the runtime settings for the service, loaded once at startup
// and injected into the components that need them.
type Config struct {
	Port        string
	OutputDir   string
	TTSLanguage string
}

// Load reads configuration from environment variables, applying defaults, and
// ensures the output directory exists before anything writes to it. The
// directory is append-only: generated audio and video files stay there for
// the lifetime of the deployment, nothing evicts them.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		OutputDir:   getEnv("OUTPUT_DIR", "videos"),
		TTSLanguage: getEnv("TTS_LANGUAGE", "hi"),
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable or the fallback when
// it is unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
