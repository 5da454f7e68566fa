// Package openai implements the text provider against the OpenAI chat
// completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"ai_game_relay/internal/models"
)

// Config holds the OpenAI connection settings.
type Config struct {
	APIKey  string
	BaseURL string // optional override, useful for proxies and tests
	Model   string
}

// Options are the fixed sampling parameters sent with every request.
type Options struct {
	MaxTokens        int
	Temperature      float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Client is an OpenAI chat completion client.
type Client struct {
	client  *goopenai.Client
	model   string
	options Options
}

// NewClient creates an OpenAI client.
func NewClient(config Config, options Options, httpClient *http.Client) *Client {
	cfg := goopenai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &Client{
		client:  goopenai.NewClientWithConfig(cfg),
		model:   config.Model,
		options: options,
	}
}

// Generate implements models.TextProvider: one system message, the history
// mapped role for role, then the new user message.
func (c *Client) Generate(ctx context.Context, system string, history []models.Turn, input string) (string, error) {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range history {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: input,
	})

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:            c.model,
		Messages:         messages,
		MaxTokens:        c.options.MaxTokens,
		Temperature:      float32(c.options.Temperature),
		FrequencyPenalty: float32(c.options.FrequencyPenalty),
		PresencePenalty:  float32(c.options.PresencePenalty),
	})
	if err != nil {
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) {
			return "", &models.UpstreamError{
				Provider:   "OpenAI",
				StatusCode: apiErr.HTTPStatusCode,
				Body:       []byte(apiErr.Message),
			}
		}
		var reqErr *goopenai.RequestError
		if errors.As(err, &reqErr) {
			return "", &models.UpstreamError{
				Provider:   "OpenAI",
				StatusCode: reqErr.HTTPStatusCode,
				Body:       reqErr.Body,
			}
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
