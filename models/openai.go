package models

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient adapts the OpenAI chat-completion API to the Client
// interface.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ Client = (*OpenAIClient)(nil)

// OpenAIOptions configures the OpenAI adapter.
type OpenAIOptions struct {
	// APIKey authenticates against the API.
	APIKey string

	// BaseURL overrides the API endpoint, e.g. for OpenAI-compatible
	// local servers. Empty means the official endpoint.
	BaseURL string

	// Model is the model name, default "gpt-4o-mini".
	Model string
}

// NewOpenAIClient creates a new OpenAI-backed client.
func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Generate sends the prompt as a single-turn chat completion.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	return &Response{Content: resp.Choices[0].Message.Content}, nil
}
