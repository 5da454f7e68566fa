package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai_game_relay/internal/clients/openai"
	"ai_game_relay/internal/models"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens int `json:"max_tokens"`
}

const chatCompletionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "You wake up."}, "finish_reason": "stop"}
	],
	"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func newTestClient(serverURL string) *openai.Client {
	return openai.NewClient(openai.Config{
		APIKey:  "test-key",
		BaseURL: serverURL + "/v1",
		Model:   "gpt-4",
	}, openai.Options{
		MaxTokens:        150,
		Temperature:      0.8,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.3,
	}, nil)
}

func TestClient_GenerateMessageOrder(t *testing.T) {
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	history := []models.Turn{
		{Role: models.RoleAssistant, Content: "Knock knock!"},
	}
	got, err := client.Generate(context.Background(), "You are a game.", history, "hello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "You wake up." {
		t.Errorf("Generate() = %q", got)
	}

	// system, then the history turn, then the new user turn.
	if len(gotReq.Messages) != 3 {
		t.Fatalf("message count = %d, want 3", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "You are a game." {
		t.Errorf("messages[0] = %+v", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != "assistant" || gotReq.Messages[1].Content != "Knock knock!" {
		t.Errorf("messages[1] = %+v", gotReq.Messages[1])
	}
	if gotReq.Messages[2].Role != "user" || gotReq.Messages[2].Content != "hello" {
		t.Errorf("messages[2] = %+v", gotReq.Messages[2])
	}
	if gotReq.Model != "gpt-4" || gotReq.MaxTokens != 150 {
		t.Errorf("model/max_tokens = %q/%d", gotReq.Model, gotReq.MaxTokens)
	}
}

func TestClient_GenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Generate(context.Background(), "sys", nil, "hi")
	var upstream *models.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Generate() error = %v, want UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", upstream.StatusCode)
	}
	if upstream.Provider != "OpenAI" {
		t.Errorf("Provider = %q", upstream.Provider)
	}
	if string(upstream.Body) != "rate limited" {
		t.Errorf("Body = %q", upstream.Body)
	}
}

func TestClient_GenerateNetworkError(t *testing.T) {
	client := openai.NewClient(openai.Config{
		APIKey:  "k",
		BaseURL: "http://127.0.0.1:1/v1",
		Model:   "gpt-4",
	}, openai.Options{}, nil)

	_, err := client.Generate(context.Background(), "sys", nil, "hi")
	if err == nil {
		t.Fatal("expected an error")
	}
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		t.Errorf("network failures must not be classified as upstream errors: %v", err)
	}
}
