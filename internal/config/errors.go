package config

import "errors"

// Configuration errors.
var (
	ErrInvalidPort       = errors.New("port must be greater than 0")
	ErrUnknownProvider   = errors.New("unknown text provider")
	ErrMissingCohereKey  = errors.New("COHERE_API_KEY is required when PROVIDER is cohere")
	ErrMissingOpenAIKey  = errors.New("OPENAI_API_KEY is required when PROVIDER is openai")
	ErrMissingHFKey      = errors.New("HF_API_KEY is required when IMAGE_ENABLED is set")
	ErrNoAllowedOrigins  = errors.New("at least one allowed origin is required")
	ErrEmptySystemPrompt = errors.New("system prompt must not be empty")
)
