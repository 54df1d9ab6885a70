package ingest

import (
	"context"

	"github.com/angrysky56/cognitive-graph-engine/abmcts"
)

// Document is one unit of loaded source material.
type Document struct {
	// ID uniquely identifies the document within its source.
	ID string

	// Content is the extracted plain text.
	Content string

	// Metadata carries source-specific attributes (path, title,
	// chunk position).
	Metadata map[string]any
}

// Loader reads documents from some source.
type Loader interface {
	Load(ctx context.Context) ([]Document, error)
}

// SeedState converts a document into the initial state of a search
// episode. The document id carries over so episode results can be
// traced back to their source.
func SeedState(doc Document) *abmcts.State {
	state := abmcts.NewState(doc.Content)
	if doc.ID != "" {
		state.ID = doc.ID
	}
	return state
}
