package gotdiff

import "strings"

// scanState is the lexical state of a markup scan.
type scanState int

const (
	stateOutside scanState = iota
	stateInTag
	stateInQuotedAttr
)

// tagScanner classifies runes of an HTML string as visible text or markup.
// Quote tracking keeps a '>' inside an attribute value from closing the tag.
type tagScanner struct {
	state       scanState
	quote       rune
	trackQuotes bool
}

// visible advances the scanner by r and reports whether r is visible text.
func (s *tagScanner) visible(r rune) bool {
	switch s.state {
	case stateOutside:
		if r == '<' {
			s.state = stateInTag
			return false
		}
		return true
	case stateInTag:
		switch {
		case s.trackQuotes && (r == '"' || r == '\''):
			s.state = stateInQuotedAttr
			s.quote = r
		case r == '>':
			s.state = stateOutside
		}
		return false
	case stateInQuotedAttr:
		if r == s.quote {
			s.state = stateInTag
			s.quote = 0
		}
		return false
	}
	return false
}

// BuildPositionMap projects html to its visible text and records, for every
// text character, the byte offset in html where it begins.
//
// An unterminated tag swallows the rest of the input.
func BuildPositionMap(html string) *PositionMap {
	var text strings.Builder
	text.Grow(len(html))
	offsets := make([]ByteOffset, 0, len(html)/2)
	runes := make([]rune, 0, len(html)/2)

	sc := tagScanner{trackQuotes: true}
	for i, r := range html {
		if !sc.visible(r) {
			continue
		}
		text.WriteRune(r)
		offsets = append(offsets, ByteOffset(i))
		runes = append(runes, r)
	}

	return &PositionMap{
		HTML:       html,
		Text:       text.String(),
		TextToHTML: offsets,
		runes:      runes,
	}
}
