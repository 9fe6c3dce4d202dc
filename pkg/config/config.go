package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	apiKeyEnv = "GEMINI_API_KEY"
	modelEnv  = "GIT_AI_MODEL"
)

// ErrMissingAPIKey means no credential could be resolved from the execution
// environment. There is no fallback: without it no text can be generated.
var ErrMissingAPIKey = errors.New(apiKeyEnv + " environment variable not set")

// Config holds the values resolved from the environment at startup.
type Config struct {
	APIKey string
	Model  string
}

// Load resolves configuration from the process environment, reading an
// optional .env file in the working directory first. A missing .env is not
// an error; a missing API key is.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIKey: strings.TrimSpace(os.Getenv(apiKeyEnv)),
		Model:  strings.TrimSpace(os.Getenv(modelEnv)),
	}
	if cfg.APIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}
