package gotdiff

import "strings"

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&apos;", "'",
)

// StripTags removes markup from text and decodes the standard HTML entities.
// It produces readable snippets only; diff positions always come from
// BuildPositionMap.
//
// A snippet cut from the middle of a tag (a '>' with no '<' before it) has the
// tag remainder dropped. Raw angle brackets are assumed to be markup.
func StripTags(text string) string {
	if gt := strings.IndexByte(text, '>'); gt >= 0 {
		if lt := strings.IndexByte(text, '<'); lt < 0 || lt > gt {
			text = text[gt+1:]
		}
	}

	var b strings.Builder
	b.Grow(len(text))

	sc := tagScanner{trackQuotes: true}
	for _, r := range text {
		if sc.visible(r) {
			b.WriteRune(r)
		}
	}

	return entityReplacer.Replace(b.String())
}
