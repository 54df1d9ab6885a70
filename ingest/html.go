package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLLoader extracts readable text from an HTML document. The markup
// is sanitized before extraction so script and event-handler payloads
// never reach the reasoning pipeline.
type HTMLLoader struct {
	reader io.Reader
	source string
	policy *bluemonday.Policy
}

// NewHTMLLoader creates a loader over the given reader. The source tag
// identifies the origin (url, file path) in document metadata.
func NewHTMLLoader(r io.Reader, source string) *HTMLLoader {
	return &HTMLLoader{
		reader: r,
		source: source,
		policy: bluemonday.UGCPolicy(),
	}
}

// Load sanitizes the markup, then extracts the title and visible text.
func (l *HTMLLoader) Load(ctx context.Context) ([]Document, error) {
	raw, err := io.ReadAll(l.reader)
	if err != nil {
		return nil, fmt.Errorf("read html from %s: %w", l.source, err)
	}

	// Title is pulled from the unsanitized markup because UGCPolicy
	// strips head elements.
	title := extractTitle(string(raw))

	sanitized := l.policy.SanitizeBytes(raw)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(sanitized)))
	if err != nil {
		return nil, fmt.Errorf("parse html from %s: %w", l.source, err)
	}

	text := normalizeWhitespace(doc.Text())
	if text == "" {
		return nil, nil
	}

	return []Document{{
		ID:      fmt.Sprintf("html_%s", l.source),
		Content: text,
		Metadata: map[string]any{
			"source": l.source,
			"type":   "html",
			"title":  title,
		},
	}}, nil
}

func extractTitle(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// normalizeWhitespace collapses runs of whitespace into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
