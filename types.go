package gotdiff

import "unicode/utf8"

// DiffType classifies a hunk.
type DiffType string

const (
	// Edit replaces original text with new text.
	Edit DiffType = "Edit"
	// Insertion adds text that was not in the old document.
	Insertion DiffType = "Insertion"
	// Deletion removes text that is not in the new document.
	Deletion DiffType = "Deletion"
)

// Diff is one reviewable hunk between an old and a new document.
//
// OriginalStartLine/OriginalEndLine are 1-based lines in the old HTML,
// StartLine/EndLine are 1-based lines in the new HTML. Code fields hold plain
// text only. DiffAreaID, ElementType and ElementIdentifier are left empty for
// the caller to assign.
type Diff struct {
	DiffID            string   `json:"diff_id"`
	DiffAreaID        string   `json:"diff_area_id"`
	DiffType          DiffType `json:"diff_type"`
	OriginalCode      string   `json:"original_code"`
	OriginalStartLine int      `json:"original_start_line"`
	OriginalEndLine   int      `json:"original_end_line"`
	NewCode           string   `json:"new_code"`
	StartLine         int      `json:"start_line"`
	EndLine           int      `json:"end_line"`
	ContextBefore     *string  `json:"context_before,omitempty"`
	ContextAfter      *string  `json:"context_after,omitempty"`
	ElementType       *string  `json:"element_type,omitempty"`
	ElementIdentifier *string  `json:"element_identifier,omitempty"`
}

// IsEmpty reports whether the hunk carries no text on either side.
func (d *Diff) IsEmpty() bool {
	return d.OriginalCode == "" && d.NewCode == ""
}

// DiffStats contains summary statistics for a hunk list.
type DiffStats struct {
	Edits      int
	Insertions int
	Deletions  int
}

// Total returns the number of hunks counted.
func (s DiffStats) Total() int {
	return s.Edits + s.Insertions + s.Deletions
}

// Stats counts hunks by type.
func Stats(diffs []Diff) DiffStats {
	var s DiffStats
	for _, d := range diffs {
		switch d.DiffType {
		case Edit:
			s.Edits++
		case Insertion:
			s.Insertions++
		case Deletion:
			s.Deletions++
		}
	}
	return s
}

// ByteOffset is an offset in bytes into an HTML string.
type ByteOffset int

// CharOffset is an offset in Unicode scalar values (runes) into a string.
type CharOffset int

// CharRange is a half-open [Start, End) range of characters.
type CharRange struct {
	Start CharOffset
	End   CharOffset
}

// Len returns the number of characters covered by the range.
func (r CharRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// OpTag is the kind of a text diff operation.
type OpTag int

const (
	OpEqual OpTag = iota
	OpDelete
	OpInsert
	OpReplace
)

func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// DiffOp is one operation of a character diff between two plain texts.
// Old and New partition their respective texts across an op sequence.
type DiffOp struct {
	Tag OpTag
	Old CharRange
	New CharRange
}

// PositionMap links the visible text of an HTML document to its source.
// TextToHTML[i] is the byte offset in HTML where character i of Text begins.
type PositionMap struct {
	HTML       string
	Text       string
	TextToHTML []ByteOffset

	runes []rune
}

// CharCount returns the number of characters in the text projection.
func (m *PositionMap) CharCount() int {
	return len(m.TextToHTML)
}

// Slice returns the text characters in r, clamped to the text bounds.
func (m *PositionMap) Slice(r CharRange) string {
	return sliceRunes(m.textRunes(), r)
}

func (m *PositionMap) textRunes() []rune {
	if m.runes == nil && m.Text != "" {
		m.runes = []rune(m.Text)
	}
	return m.runes
}

func sliceRunes(runes []rune, r CharRange) string {
	start, end := int(r.Start), int(r.End)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// runeCount returns the length of s in characters.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
