package vecstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/angrysky56/cognitive-graph-engine/ingest"
)

// ErrNoEmbedder is returned by stores that need an embedder but were
// constructed without one.
var ErrNoEmbedder = errors.New("vecstore: no embedder configured")

// Embedder turns text into vectors. Implementations must be safe for
// concurrent use.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Result is one similarity hit.
type Result struct {
	Document ingest.Document

	// Score is the cosine similarity to the query, higher is closer.
	Score float64
}

// Store indexes documents and answers top-k similarity queries.
type Store interface {
	Add(ctx context.Context, docs []ingest.Document) error
	Search(ctx context.Context, query string, k int) ([]Result, error)
}

// MemoryStore is an in-memory cosine-similarity store. Safe for
// concurrent use.
type MemoryStore struct {
	embedder Embedder

	mu         sync.RWMutex
	documents  []ingest.Document
	embeddings [][]float32
}

// NewMemoryStore creates an empty store over the given embedder.
func NewMemoryStore(embedder Embedder) *MemoryStore {
	return &MemoryStore{embedder: embedder}
}

// Add embeds and indexes the documents.
func (s *MemoryStore) Add(ctx context.Context, docs []ingest.Document) error {
	if len(docs) == 0 {
		return nil
	}
	if s.embedder == nil {
		return ErrNoEmbedder
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}
	embeddings, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed %d documents: %w", len(docs), err)
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("embedder returned %d vectors for %d documents", len(embeddings), len(docs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, docs...)
	s.embeddings = append(s.embeddings, embeddings...)
	return nil
}

// Len returns the number of indexed documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// Search returns the k documents most similar to the query, best first.
func (s *MemoryStore) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if s.embedder == nil {
		return nil, ErrNoEmbedder
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]Result, len(s.documents))
	for i := range s.documents {
		results[i] = Result{
			Document: s.documents[i],
			Score:    cosineSimilarity(queryVec, s.embeddings[i]),
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
