// Package config loads and validates the relay configuration. Secrets and
// deployment settings come from the environment; the game persona and
// generation parameters come from a yaml file so they can be swapped without
// a rebuild.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Supported text providers.
const (
	ProviderCohere = "cohere"
	ProviderOpenAI = "openai"
)

// Config is the process-wide configuration, loaded once at startup.
type Config struct {
	Port     int    `env:"PORT" envDefault:"5000"`
	Provider string `env:"PROVIDER" envDefault:"cohere"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	CohereAPIKey string `env:"COHERE_API_KEY"`
	CohereAPIURL string `env:"COHERE_API_URL" envDefault:"https://api.cohere.ai"`
	CohereModel  string `env:"COHERE_MODEL" envDefault:"command-xlarge-nightly"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4"`

	ImageEnabled bool   `env:"IMAGE_ENABLED" envDefault:"false"`
	HFAPIKey     string `env:"HF_API_KEY"`
	HFAPIURL     string `env:"HF_API_URL" envDefault:"https://api-inference.huggingface.co"`
	HFModel      string `env:"HF_MODEL" envDefault:"stabilityai/stable-diffusion-2-1"`

	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://bengilmo1111-github-io.vercel.app"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`
	GameConfigPath  string        `env:"GAME_CONFIG_PATH" envDefault:"game.yaml"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether internal error messages may be exposed.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// validateConfig checks the configuration and fills remaining defaults.
func validateConfig(cfg *Config) error {
	if cfg.Port <= 0 {
		return ErrInvalidPort
	}
	switch cfg.Provider {
	case ProviderCohere:
		if cfg.CohereAPIKey == "" {
			return ErrMissingCohereKey
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return ErrMissingOpenAIKey
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if cfg.ImageEnabled && cfg.HFAPIKey == "" {
		return ErrMissingHFKey
	}
	if len(cfg.AllowedOrigins) == 0 {
		return ErrNoAllowedOrigins
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 30 * time.Second
	}
	return nil
}
