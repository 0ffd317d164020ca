// Package processor prepares documents for diffing.
//
// The diff engine works on raw markup and never builds a DOM. Processors are an
// opt-in step for callers whose inputs are full pages or another format: they
// reduce a document to the HTML that should be compared.
package processor

import (
	"path/filepath"
	"strings"
)

// ContentProcessor turns a source document into the HTML that gets diffed.
type ContentProcessor interface {
	Prepare(content string) (string, error)
	ContentType() string
}

// ForFilename returns the processor matching a file name's extension:
// Markdown for .md and .markdown, HTML otherwise.
func ForFilename(name string, htmlOpts ...HTMLOption) ContentProcessor {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return NewMarkdownProcessor()
	default:
		return NewHTMLProcessor(htmlOpts...)
	}
}
