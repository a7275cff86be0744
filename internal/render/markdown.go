// Package render turns generated model text into HTML for clients that ask for it.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Markdown renders Markdown source to HTML.
// Raw HTML in the source is escaped, since the source is untrusted model output.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a renderer with GitHub-flavoured extensions enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// ToHTML converts src to an HTML fragment.
func (m *Markdown) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
