package gotdiff

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestBuildPositionMap(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		text    string
		offsets []ByteOffset
	}{
		{
			name:    "simple paragraph",
			html:    "<p>Hello</p>",
			text:    "Hello",
			offsets: []ByteOffset{3, 4, 5, 6, 7},
		},
		{
			name:    "no markup",
			html:    "ab",
			text:    "ab",
			offsets: []ByteOffset{0, 1},
		},
		{
			name:    "empty",
			html:    "",
			text:    "",
			offsets: []ByteOffset{},
		},
		{
			name:    "double quoted attribute with angle bracket",
			html:    `<a title="x>y">link</a>`,
			text:    "link",
			offsets: []ByteOffset{15, 16, 17, 18},
		},
		{
			name:    "single quoted attribute with angle bracket",
			html:    `<img alt='a>b'>c`,
			text:    "c",
			offsets: []ByteOffset{15},
		},
		{
			name:    "multibyte text",
			html:    "<b>你好</b>",
			text:    "你好",
			offsets: []ByteOffset{3, 6},
		},
		{
			name:    "unterminated tag swallows the rest",
			html:    `ab<p class="x`,
			text:    "ab",
			offsets: []ByteOffset{0, 1},
		},
		{
			name:    "newlines between tags are text",
			html:    "<p>A</p>\n<p>B</p>",
			text:    "A\nB",
			offsets: []ByteOffset{3, 8, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildPositionMap(tt.html)
			if m.Text != tt.text {
				t.Errorf("Text = %q, want %q", m.Text, tt.text)
			}
			if diff := cmp.Diff(tt.offsets, m.TextToHTML); diff != "" {
				t.Errorf("TextToHTML mismatch (-want +got):\n%s", diff)
			}
			if m.HTML != tt.html {
				t.Error("HTML should be the input")
			}
		})
	}
}

func TestBuildPositionMap_Consistency(t *testing.T) {
	inputs := []string{
		"<div class=\"c\">Hello <b>wörld</b> 👍</div>",
		"<p>日本語のテキスト</p>\n<p>second line</p>\n",
		"plain text & more",
		"<ul>\n  <li>one</li>\n  <li data-x='>'>two</li>\n</ul>",
		"text before<br/>text after",
	}

	for _, html := range inputs {
		m := BuildPositionMap(html)

		if m.CharCount() != utf8.RuneCountInString(m.Text) {
			t.Errorf("%q: CharCount %d, text has %d runes", html, m.CharCount(), utf8.RuneCountInString(m.Text))
		}

		i := 0
		for _, r := range m.Text {
			off := int(m.TextToHTML[i])
			if !utf8.RuneStart(html[off]) {
				t.Errorf("%q: offset %d of char %d is not a rune start", html, off, i)
			}
			got, _ := utf8.DecodeRuneInString(html[off:])
			if got != r {
				t.Errorf("%q: char %d is %q but source has %q", html, i, r, got)
			}
			if i > 0 && m.TextToHTML[i] <= m.TextToHTML[i-1] {
				t.Errorf("%q: offsets not increasing at %d", html, i)
			}
			i++
		}

		if strings.ContainsAny(m.Text, "<>") {
			t.Errorf("%q: markup leaked into text %q", html, m.Text)
		}
	}
}

func TestPositionMapSlice(t *testing.T) {
	m := BuildPositionMap("<p>你好世界</p>")

	tests := []struct {
		r    CharRange
		want string
	}{
		{CharRange{0, 2}, "你好"},
		{CharRange{2, 4}, "世界"},
		{CharRange{3, 10}, "界"},
		{CharRange{-1, 1}, "你"},
		{CharRange{2, 2}, ""},
		{CharRange{3, 1}, ""},
	}

	for _, tt := range tests {
		if got := m.Slice(tt.r); got != tt.want {
			t.Errorf("Slice(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
