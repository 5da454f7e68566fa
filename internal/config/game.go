package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds the persona prompt and generation parameters. These vary
// between deployments, so they live in a yaml file next to the binary rather
// than in code; a missing file falls back to the built-in defaults.
type GameConfig struct {
	SystemPrompt string           `yaml:"system_prompt"`
	ImagePrompt  string           `yaml:"image_prompt"`
	Generation   GenerationConfig `yaml:"generation"`
	Image        ImageConfig      `yaml:"image"`
}

// GenerationConfig are the fixed sampling parameters for the text provider.
type GenerationConfig struct {
	MaxTokens        int     `yaml:"max_tokens"`
	Temperature      float64 `yaml:"temperature"`
	TopK             int     `yaml:"k"`
	TopP             float64 `yaml:"p"`
	FrequencyPenalty float64 `yaml:"frequency_penalty"`
	PresencePenalty  float64 `yaml:"presence_penalty"`
}

// ImageConfig are the fixed parameters for the image provider.
type ImageConfig struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	NegativePrompt string `yaml:"negative_prompt"`
}

// defaultGameConfig mirrors the deployed game settings.
func defaultGameConfig() *GameConfig {
	return &GameConfig{
		SystemPrompt: "You are a text-based adventure game. Create immersive experiences for the player. " +
			"The game should be funny and have jokes and puns like Hitchhikers guide to the Galaxy. " +
			"If a player is stuck and asks for help you should offer it to them.",
		ImagePrompt: "Summarize the following scene as a short visual description for an image generation model. " +
			"Respond with the description only, in 20 words or fewer.",
		Generation: GenerationConfig{
			MaxTokens:        150,
			Temperature:      0.8,
			TopK:             0,
			TopP:             0.75,
			FrequencyPenalty: 0.5,
			PresencePenalty:  0.3,
		},
		Image: ImageConfig{
			Width:          512,
			Height:         512,
			NegativePrompt: "blurry, low quality, distorted, text, watermark",
		},
	}
}

// LoadGame reads the game config from path. A missing file is not an error.
func LoadGame(path string) (*GameConfig, error) {
	cfg := defaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		return nil, ErrEmptySystemPrompt
	}
	defaults := defaultGameConfig()
	if cfg.Generation.MaxTokens <= 0 {
		cfg.Generation.MaxTokens = defaults.Generation.MaxTokens
	}
	if cfg.Generation.Temperature <= 0 {
		cfg.Generation.Temperature = defaults.Generation.Temperature
	}
	if cfg.Generation.TopP <= 0 {
		cfg.Generation.TopP = defaults.Generation.TopP
	}
	if cfg.Image.Width <= 0 {
		cfg.Image.Width = defaults.Image.Width
	}
	if cfg.Image.Height <= 0 {
		cfg.Image.Height = defaults.Image.Height
	}

	return cfg, nil
}
