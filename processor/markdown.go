package processor

import (
	"bytes"

	"github.com/ZaguanLabs/gotdiff"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownProcessor renders Markdown to HTML so Markdown documents can be
// diffed with HTML line anchoring.
type MarkdownProcessor struct {
	md goldmark.Markdown
}

// NewMarkdownProcessor creates a Markdown processor with GitHub Flavored
// Markdown extensions (tables, strikethrough, task lists, autolinks).
func NewMarkdownProcessor() *MarkdownProcessor {
	return &MarkdownProcessor{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Prepare renders content to HTML.
func (p *MarkdownProcessor) Prepare(content string) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(content), &buf); err != nil {
		return "", &gotdiff.ProcessorError{
			Message:     "failed to render Markdown",
			Cause:       err,
			ContentType: p.ContentType(),
		}
	}
	return buf.String(), nil
}

// ContentType returns "markdown".
func (p *MarkdownProcessor) ContentType() string {
	return "markdown"
}

var _ ContentProcessor = (*MarkdownProcessor)(nil)
