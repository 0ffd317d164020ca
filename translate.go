package gotdiff

import "slices"

// TextPosToHTMLByte maps a text character position to the byte offset in the
// source HTML where that character begins. Positions past the end of the text
// map to len(html).
func TextPosToHTMLByte(m *PositionMap, pos CharOffset) ByteOffset {
	if pos >= 0 && int(pos) < len(m.TextToHTML) {
		return m.TextToHTML[pos]
	}
	return ByteOffset(len(m.HTML))
}

// HTMLByteToHTMLChar counts the characters of html that begin before pos.
func HTMLByteToHTMLChar(html string, pos ByteOffset) CharOffset {
	n := 0
	for i := range html {
		if i >= int(pos) {
			break
		}
		n++
	}
	return CharOffset(n)
}

// HTMLCharToLine returns the 1-based line of the character at pos.
func HTMLCharToLine(html string, pos CharOffset) int {
	line := 1
	n := 0
	for _, r := range html {
		if n >= int(pos) {
			break
		}
		if r == '\n' {
			line++
		}
		n++
	}
	return line
}

// LineIndex answers line queries for one HTML document in O(log n) by keeping
// the byte offsets of its newlines. It agrees with chaining HTMLByteToHTMLChar
// and HTMLCharToLine for any offset on a character boundary.
type LineIndex struct {
	html     string
	newlines []ByteOffset
}

// NewLineIndex scans html once for newlines.
func NewLineIndex(html string) *LineIndex {
	var nl []ByteOffset
	for i := 0; i < len(html); i++ {
		if html[i] == '\n' {
			nl = append(nl, ByteOffset(i))
		}
	}
	return &LineIndex{html: html, newlines: nl}
}

// Line returns the 1-based line of the character starting at pos.
func (x *LineIndex) Line(pos ByteOffset) int {
	pos = x.clamp(pos)
	n, _ := slices.BinarySearch(x.newlines, pos)
	return n + 1
}

// LineBefore returns the 1-based line of the character that ends at pos, or
// line 1 when pos is at the start of the document.
func (x *LineIndex) LineBefore(pos ByteOffset) int {
	pos = x.clamp(pos)
	if pos == 0 {
		return 1
	}
	line := x.Line(pos)
	// '\n' is never part of a multi-byte sequence, so the last byte decides.
	if x.html[pos-1] == '\n' {
		line--
	}
	return line
}

// Lines returns the number of lines in the document.
func (x *LineIndex) Lines() int {
	return len(x.newlines) + 1
}

func (x *LineIndex) clamp(pos ByteOffset) ByteOffset {
	if pos < 0 {
		return 0
	}
	if int(pos) > len(x.html) {
		return ByteOffset(len(x.html))
	}
	return pos
}
