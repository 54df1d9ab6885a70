package vecstore

import (
	"context"

	"github.com/tmc/langchaingo/embeddings"
)

// LangChainEmbedder adapts a langchaingo embedder to the Embedder
// interface, so any provider langchaingo supports can back a store.
type LangChainEmbedder struct {
	embedder embeddings.Embedder
}

// NewLangChainEmbedder wraps a langchaingo embedder.
func NewLangChainEmbedder(embedder embeddings.Embedder) *LangChainEmbedder {
	return &LangChainEmbedder{embedder: embedder}
}

// EmbedQuery embeds a single query string.
func (l *LangChainEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return l.embedder.EmbedQuery(ctx, text)
}

// EmbedDocuments embeds a batch of document texts.
func (l *LangChainEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return l.embedder.EmbedDocuments(ctx, texts)
}
