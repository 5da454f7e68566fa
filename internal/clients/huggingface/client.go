// Package huggingface implements the image provider against the Hugging Face
// inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ai_game_relay/internal/models"
)

// Config holds the Hugging Face connection settings.
type Config struct {
	Host   string // API host (full URL)
	APIKey string // bearer token
	Model  string // model id, e.g. stabilityai/stable-diffusion-2-1
}

// Options are the fixed image parameters sent with every request.
type Options struct {
	Width          int
	Height         int
	NegativePrompt string
}

// Client is a Hugging Face inference client.
type Client struct {
	config  Config
	options Options
	client  *http.Client
}

// GenerateRequest is the wire format of the inference call.
type GenerateRequest struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

// Parameters are the per-request generation parameters.
type Parameters struct {
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

// NewClient creates a Hugging Face client.
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

// Generate implements models.ImageProvider. The API answers with either raw
// image bytes or JSON-wrapped base64 depending on the model backend; both are
// returned as decoded bytes plus a content type.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, string, error) {
	reqBody := GenerateRequest{
		Inputs: prompt,
		Parameters: Parameters{
			Width:          c.options.Width,
			Height:         c.options.Height,
			NegativePrompt: c.options.NegativePrompt,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.config.Host, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to call Hugging Face: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &models.UpstreamError{
			Provider:   "Hugging Face",
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		return decodeJSONImage(body)
	}
	if contentType == "" {
		contentType = "image/png"
	}
	return body, contentType, nil
}

// decodeJSONImage handles the JSON-wrapped variant: either an object or a
// one-element array carrying base64 bytes under a known key.
func decodeJSONImage(body []byte) ([]byte, string, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, "", fmt.Errorf("failed to parse image response: %w", err)
	}
	if list, ok := decoded.([]any); ok && len(list) > 0 {
		decoded = list[0]
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, "", fmt.Errorf("unexpected image response shape")
	}
	for _, key := range []string{"generated_image", "image", "blob"} {
		encoded, ok := obj[key].(string)
		if !ok {
			continue
		}
		// Some backends prefix the payload with a data URI header.
		if idx := strings.Index(encoded, ";base64,"); idx != -1 {
			encoded = encoded[idx+len(";base64,"):]
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode image payload: %w", err)
		}
		return data, "image/png", nil
	}
	return nil, "", fmt.Errorf("image response carried no image payload")
}
