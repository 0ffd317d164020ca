package processor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/gotdiff"
	"golang.org/x/net/html"
)

// InvisibleTags contains elements whose content is not visible document text.
var InvisibleTags = []string{"script", "style", "noscript", "template"}

// IgnoreAttr marks an element to be left out of the diff.
const IgnoreAttr = "data-diff-ignore"

// HTMLProcessor reduces an HTML page to the inner HTML of a root element,
// dropping invisible elements and comments.
type HTMLProcessor struct {
	root        string
	ignoredTags []string
}

// HTMLOption configures the HTML processor.
type HTMLOption func(*HTMLProcessor)

// WithRoot sets the CSS selector of the element whose content is diffed.
func WithRoot(selector string) HTMLOption {
	return func(p *HTMLProcessor) {
		if selector != "" {
			p.root = selector
		}
	}
}

// WithIgnoredTags replaces the list of tags removed before diffing.
func WithIgnoredTags(tags []string) HTMLOption {
	return func(p *HTMLProcessor) {
		p.ignoredTags = make([]string, 0, len(tags))
		for _, tag := range tags {
			p.ignoredTags = append(p.ignoredTags, strings.ToLower(strings.TrimSpace(tag)))
		}
	}
}

// NewHTMLProcessor creates an HTML processor rooted at <body>.
func NewHTMLProcessor(opts ...HTMLOption) *HTMLProcessor {
	p := &HTMLProcessor{
		root:        "body",
		ignoredTags: InvisibleTags,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare parses content and returns the inner HTML of the root element.
func (p *HTMLProcessor) Prepare(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &gotdiff.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: p.ContentType(),
		}
	}

	root := doc.Find(p.root).First()
	if root.Length() == 0 {
		return "", &gotdiff.ProcessorError{
			Message:     "no element matches " + p.root,
			ContentType: p.ContentType(),
		}
	}

	if len(p.ignoredTags) > 0 {
		root.Find(strings.Join(p.ignoredTags, ",")).Remove()
	}
	root.Find("[" + IgnoreAttr + "]").Remove()

	// Comments may contain '>' which would end a tag early for a plain scanner.
	for _, n := range root.Nodes {
		removeComments(n)
	}

	out, err := root.Html()
	if err != nil {
		return "", &gotdiff.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: p.ContentType(),
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

var _ ContentProcessor = (*HTMLProcessor)(nil)
