package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownLoader extracts plain text from Markdown by walking the
// parsed AST and collecting leaf literals, so formatting syntax never
// leaks into reasoning content.
type MarkdownLoader struct {
	reader io.Reader
	source string
}

// NewMarkdownLoader creates a loader over the given reader.
func NewMarkdownLoader(r io.Reader, source string) *MarkdownLoader {
	return &MarkdownLoader{reader: r, source: source}
}

// Load parses the Markdown and returns one document per top-level
// section, split at level-1 and level-2 headings. Content before the
// first heading becomes its own document.
func (l *MarkdownLoader) Load(ctx context.Context) ([]Document, error) {
	raw, err := io.ReadAll(l.reader)
	if err != nil {
		return nil, fmt.Errorf("read markdown from %s: %w", l.source, err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	root := p.Parse(raw)

	var docs []Document
	var section strings.Builder
	var heading string

	flush := func() {
		text := normalizeWhitespace(section.String())
		if text == "" {
			return
		}
		docs = append(docs, Document{
			ID:      fmt.Sprintf("md_%s_s%d", l.source, len(docs)),
			Content: text,
			Metadata: map[string]any{
				"source":  l.source,
				"type":    "markdown",
				"heading": heading,
			},
		})
		section.Reset()
	}

	for _, child := range root.GetChildren() {
		if h, ok := child.(*ast.Heading); ok && h.Level <= 2 {
			flush()
			heading = nodeText(h)
		}
		section.WriteString(nodeText(child))
		section.WriteString("\n")
	}
	flush()

	return docs, nil
}

// nodeText collects the literal text beneath an AST node.
func nodeText(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := n.AsLeaf(); leaf != nil && len(leaf.Literal) > 0 {
			b.Write(leaf.Literal)
			b.WriteString(" ")
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
