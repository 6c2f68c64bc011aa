// Package llm wraps the completion provider behind a single Complete call.
// It targets any OpenAI-compatible endpoint, which includes a local
// Ollama server running with its OpenAI compatibility layer.
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Completer is the interface consumed by the intent classifier.
type Completer interface {
	// Complete sends system instructions plus user text and returns the
	// model's raw response text. The request forces JSON output and zero
	// sampling temperature for determinism.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client is the go-openai backed Completer.
type Client struct {
	client *openai.Client
	model  string
}

var _ Completer = (*Client)(nil)

// NewClient creates a completion client. baseURL may point at a local
// Ollama endpoint (e.g. http://ollama:11434/v1); apiKey may be empty for
// servers that do not check it.
func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete implements Completer.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
