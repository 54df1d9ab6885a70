package ingest

import (
	"context"
	"fmt"
	"maps"
	"os"
	"strings"
)

// TextLoader loads a plain-text file, either whole or split into
// paragraphs.
type TextLoader struct {
	path            string
	metadata        map[string]any
	byParagraph     bool
	paragraphMarker string
}

// TextLoaderOption configures a TextLoader.
type TextLoaderOption func(*TextLoader)

// WithTextMetadata merges extra metadata into every loaded document.
func WithTextMetadata(metadata map[string]any) TextLoaderOption {
	return func(l *TextLoader) {
		maps.Copy(l.metadata, metadata)
	}
}

// ByParagraph splits the file at the given marker (default "\n\n")
// instead of loading it as one document.
func ByParagraph(marker string) TextLoaderOption {
	return func(l *TextLoader) {
		l.byParagraph = true
		if marker != "" {
			l.paragraphMarker = marker
		}
	}
}

// NewTextLoader creates a loader for the given file.
func NewTextLoader(path string, opts ...TextLoaderOption) *TextLoader {
	l := &TextLoader{
		path:            path,
		metadata:        map[string]any{"source": path, "type": "text"},
		paragraphMarker: "\n\n",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file and returns one document, or one per paragraph
// when configured.
func (l *TextLoader) Load(ctx context.Context) ([]Document, error) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}

	if !l.byParagraph {
		return []Document{{
			ID:       fmt.Sprintf("text_%s", l.path),
			Content:  string(content),
			Metadata: l.cloneMetadata(),
		}}, nil
	}

	var docs []Document
	for i, paragraph := range strings.Split(string(content), l.paragraphMarker) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		metadata := l.cloneMetadata()
		metadata["paragraph"] = i
		docs = append(docs, Document{
			ID:       fmt.Sprintf("text_%s_p%d", l.path, i),
			Content:  paragraph,
			Metadata: metadata,
		})
	}
	return docs, nil
}

func (l *TextLoader) cloneMetadata() map[string]any {
	out := make(map[string]any, len(l.metadata))
	maps.Copy(out, l.metadata)
	return out
}
