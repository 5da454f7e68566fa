package models

import "encoding/json"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is a single conversation turn. Turns are append-only: the transcript a
// client sends is ordered oldest first and is never rewritten by the relay.
type Turn struct {
	Role    string `json:"role"`    // user/assistant/system
	Content string `json:"content"` // turn text
}

// ConverseRequest is the body of POST /api. History stays raw so the handler
// can tell "not an array" apart from an ordinary decode failure.
type ConverseRequest struct {
	Input   string          `json:"input"`
	History json.RawMessage `json:"history"`
}

// ConverseResponse carries the normalized provider text.
type ConverseResponse struct {
	Response string `json:"response"`
}

// ImageRequest is the body of POST /generate-image.
type ImageRequest struct {
	Prompt string `json:"prompt"`
}

// ImageResponse carries the generated image as a base64 data URI.
type ImageResponse struct {
	Image string `json:"image"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the single error shape returned by every endpoint.
// Details carries the upstream body on provider errors; Message carries
// internal error text and is only populated in development mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}
