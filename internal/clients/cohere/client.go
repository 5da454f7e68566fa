// Package cohere implements the text provider against Cohere's generate API.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ai_game_relay/internal/models"
)

// Config holds the Cohere connection settings.
type Config struct {
	Host   string // API host (full URL)
	APIKey string // bearer token
	Model  string // model name
}

// Options are the fixed sampling parameters sent with every request.
type Options struct {
	MaxTokens        int
	Temperature      float64
	TopK             int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Client is a Cohere generate client.
type Client struct {
	config  Config
	options Options
	client  *http.Client
}

// GenerateRequest is the wire format of the generate call.
type GenerateRequest struct {
	Model            string  `json:"model"`
	Prompt           string  `json:"prompt"`
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	K                int     `json:"k"`
	P                float64 `json:"p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// GenerateResponse covers the fields the relay reads from the response.
type GenerateResponse struct {
	ID          string       `json:"id"`
	Generations []Generation `json:"generations"`
}

// Generation is a single generated completion.
type Generation struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NewClient creates a Cohere client. A nil httpClient falls back to a default
// client with no timeout.
func NewClient(config Config, options Options, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		config:  config,
		options: options,
		client:  httpClient,
	}
}

// BuildPrompt flattens the conversation into Cohere's single-prompt format:
// system text, a blank line, one "User:"/"Assistant:" line per turn in order,
// the new input, then a trailing "Assistant:" cue.
func BuildPrompt(system string, history []models.Turn, input string) string {
	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\n")
	for _, turn := range history {
		if turn.Role == models.RoleUser {
			sb.WriteString("User: ")
		} else {
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(input)
	sb.WriteString("\nAssistant:")
	return sb.String()
}

// Generate implements models.TextProvider. Exactly one upstream call, no
// retries; a non-2xx answer is surfaced as a models.UpstreamError.
func (c *Client) Generate(ctx context.Context, system string, history []models.Turn, input string) (string, error) {
	reqBody := GenerateRequest{
		Model:            c.config.Model,
		Prompt:           BuildPrompt(system, history, input),
		MaxTokens:        c.options.MaxTokens,
		Temperature:      c.options.Temperature,
		K:                c.options.TopK,
		P:                c.options.TopP,
		FrequencyPenalty: c.options.FrequencyPenalty,
		PresencePenalty:  c.options.PresencePenalty,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/generate", c.config.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Cohere: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &models.UpstreamError{
			Provider:   "Cohere",
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var response GenerateResponse
	if err := json.Unmarshal(body, &response); err == nil && len(response.Generations) > 0 {
		if text := response.Generations[0].Text; strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	// Unexpected shape: hand the raw body to the normalizer upstream.
	return string(body), nil
}
