package models

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// LangChainClient adapts a langchaingo llms.Model to the Client
// interface. Any provider langchaingo supports (OpenAI-compatible
// endpoints, Ollama, Anthropic, ...) can serve as an ensemble member
// through this adapter.
type LangChainClient struct {
	model llms.Model
}

var _ Client = (*LangChainClient)(nil)

// NewLangChainClient wraps an existing langchaingo model.
func NewLangChainClient(model llms.Model) *LangChainClient {
	return &LangChainClient{model: model}
}

// Generate sends the prompt as a single completion call.
func (c *LangChainClient) Generate(ctx context.Context, prompt string) (*Response, error) {
	content, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return nil, err
	}
	return &Response{Content: content}, nil
}
