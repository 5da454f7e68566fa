package models

import "context"

// TextProvider generates the next assistant turn for a conversation. The
// payload sent upstream must be exactly one system turn, the history verbatim
// and in order, then the new user turn.
type TextProvider interface {
	Generate(ctx context.Context, system string, history []Turn, input string) (string, error)
}

// ImageProvider turns a text prompt into raw image bytes plus a content type.
type ImageProvider interface {
	Generate(ctx context.Context, prompt string) ([]byte, string, error)
}
