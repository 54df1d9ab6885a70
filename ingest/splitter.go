package ingest

import (
	"fmt"
	"maps"
	"strings"
)

// RecursiveSplitter cuts documents into chunks no larger than ChunkSize,
// trying coarser separators first so related text stays together.
type RecursiveSplitter struct {
	separators []string
	chunkSize  int
}

// SplitterOption configures a RecursiveSplitter.
type SplitterOption func(*RecursiveSplitter)

// WithChunkSize sets the maximum chunk length in bytes.
func WithChunkSize(size int) SplitterOption {
	return func(s *RecursiveSplitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithSeparators replaces the separator hierarchy, coarsest first.
func WithSeparators(separators []string) SplitterOption {
	return func(s *RecursiveSplitter) {
		if len(separators) > 0 {
			s.separators = separators
		}
	}
}

// NewRecursiveSplitter creates a splitter with paragraph, line and word
// separators and a 1000-byte chunk size.
func NewRecursiveSplitter(opts ...SplitterOption) *RecursiveSplitter {
	s := &RecursiveSplitter{
		separators: []string{"\n\n", "\n", " "},
		chunkSize:  1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SplitText cuts text into chunks of at most the configured size.
func (s *RecursiveSplitter) SplitText(text string) []string {
	return s.split(text, s.separators)
}

// SplitDocuments splits each document and tags the chunks with their
// position and parent id.
func (s *RecursiveSplitter) SplitDocuments(docs []Document) []Document {
	var chunks []Document
	for _, doc := range docs {
		parts := s.SplitText(doc.Content)
		for i, part := range parts {
			metadata := make(map[string]any, len(doc.Metadata)+3)
			maps.Copy(metadata, doc.Metadata)
			metadata["chunk_index"] = i
			metadata["chunk_total"] = len(parts)
			metadata["parent_id"] = doc.ID

			chunks = append(chunks, Document{
				ID:       fmt.Sprintf("%s_chunk_%d", doc.ID, i),
				Content:  part,
				Metadata: metadata,
			})
		}
	}
	return chunks
}

func (s *RecursiveSplitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}
	if len(separators) == 0 {
		return s.splitByLength(text)
	}

	var pieces []string
	for _, piece := range strings.Split(text, separators[0]) {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		if len(piece) <= s.chunkSize {
			pieces = append(pieces, piece)
		} else {
			pieces = append(pieces, s.split(piece, separators[1:])...)
		}
	}
	return s.merge(pieces, separators[0])
}

// merge packs adjacent pieces back together while they still fit.
func (s *RecursiveSplitter) merge(pieces []string, separator string) []string {
	var merged []string
	var current string
	for _, piece := range pieces {
		if current == "" {
			current = piece
			continue
		}
		if len(current)+len(separator)+len(piece) <= s.chunkSize {
			current += separator + piece
		} else {
			merged = append(merged, current)
			current = piece
		}
	}
	if current != "" {
		merged = append(merged, current)
	}
	return merged
}

func (s *RecursiveSplitter) splitByLength(text string) []string {
	var chunks []string
	for start := 0; start < len(text); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}
