// Package services orchestrates provider calls for the game relay. The relay
// is stateless: every request carries its own history, so the service keeps
// no per-session state and concurrent requests are naturally isolated.
package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"ai_game_relay/internal/config"
	"ai_game_relay/internal/models"
)

// GameService drives the text and image providers.
type GameService struct {
	text         models.TextProvider
	image        models.ImageProvider
	systemPrompt string
	imagePrompt  string
}

// NewGameService creates the service. image may be nil when image generation
// is disabled; an empty image_prompt disables the summarization pass.
func NewGameService(text models.TextProvider, image models.ImageProvider, game *config.GameConfig) *GameService {
	return &GameService{
		text:         text,
		image:        image,
		systemPrompt: game.SystemPrompt,
		imagePrompt:  game.ImagePrompt,
	}
}

// Converse sends input plus the caller's history to the text provider and
// returns the normalized response. Exactly one upstream call, no retries; the
// caller's history slice is never mutated.
func (s *GameService) Converse(ctx context.Context, input string, history []models.Turn) (string, error) {
	raw, err := s.text.Generate(ctx, s.systemPrompt, history, input)
	if err != nil {
		return "", err
	}
	return NormalizeText(raw), nil
}

// ImageEnabled reports whether an image provider is configured.
func (s *GameService) ImageEnabled() bool {
	return s.image != nil
}

// GenerateImage turns prompt into a base64 data URI. When an image prompt is
// configured the scene text is first summarized by the text provider, so the
// operation makes two upstream calls; otherwise one. Failures from either
// provider propagate unchanged.
func (s *GameService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.image == nil {
		return "", fmt.Errorf("image generation is not configured")
	}

	imagePrompt := prompt
	if s.imagePrompt != "" && s.text != nil {
		raw, err := s.text.Generate(ctx, s.imagePrompt, nil, prompt)
		if err != nil {
			return "", err
		}
		if summary := NormalizeText(raw); summary != "" {
			imagePrompt = summary
		}
	}

	data, contentType, err := s.image.Generate(ctx, imagePrompt)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
