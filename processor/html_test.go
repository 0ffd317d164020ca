package processor

import (
	"errors"
	"strings"
	"testing"

	"github.com/ZaguanLabs/gotdiff"
)

func TestHTMLProcessor_Prepare_FullPage(t *testing.T) {
	p := NewHTMLProcessor()

	page := `<!DOCTYPE html>
<html><head><title>Title</title><style>p { color: red; }</style></head><body><p>Hello</p><script>track();</script><!-- a > b --><div data-diff-ignore>skip me</div></body></html>`

	out, err := p.Prepare(page)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if out != "<p>Hello</p>" {
		t.Errorf("Prepare() = %q, want %q", out, "<p>Hello</p>")
	}
}

func TestHTMLProcessor_Prepare_FragmentKeepsLines(t *testing.T) {
	p := NewHTMLProcessor()

	out, err := p.Prepare("<p>A</p>\n<p>B</p>")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if out != "<p>A</p>\n<p>B</p>" {
		t.Errorf("Prepare() = %q", out)
	}
}

func TestHTMLProcessor_WithRoot(t *testing.T) {
	p := NewHTMLProcessor(WithRoot("#doc"))

	out, err := p.Prepare(`<nav>Menu</nav><article id="doc"><p>Body</p></article>`)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if out != "<p>Body</p>" {
		t.Errorf("Prepare() = %q", out)
	}
}

func TestHTMLProcessor_RootNotFound(t *testing.T) {
	p := NewHTMLProcessor(WithRoot("#missing"))

	_, err := p.Prepare("<p>text</p>")
	var perr *gotdiff.ProcessorError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProcessorError, got %v", err)
	}
	if perr.ContentType != "html" {
		t.Errorf("ContentType = %q", perr.ContentType)
	}
}

func TestHTMLProcessor_WithIgnoredTags(t *testing.T) {
	p := NewHTMLProcessor(WithIgnoredTags([]string{" FIGURE "}))

	out, err := p.Prepare(`<p>Keep</p><figure>Drop</figure><script>kept()</script>`)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if strings.Contains(out, "Drop") {
		t.Errorf("figure should be removed: %q", out)
	}
	if !strings.Contains(out, "kept()") {
		t.Errorf("script should be kept when not in the ignore list: %q", out)
	}
}

func TestHTMLProcessor_NestedComments(t *testing.T) {
	p := NewHTMLProcessor()

	out, err := p.Prepare(`<div><p>One<!-- x > y --></p><p>Two</p></div>`)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if out != "<div><p>One</p><p>Two</p></div>" {
		t.Errorf("Prepare() = %q", out)
	}
}

func TestForFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"notes.md", "markdown"},
		{"README.MARKDOWN", "markdown"},
		{"page.html", "html"},
		{"no-extension", "html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForFilename(tt.name).ContentType(); got != tt.want {
				t.Errorf("ForFilename(%q).ContentType() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
