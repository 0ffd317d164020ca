package gotdiff

import "strings"

// contextWindow controls how much surrounding text anchors a hunk.
type contextWindow struct {
	budget int // maximum characters per side
	lines  int // lines taken next to the target
	extend int // extra lines taken when the first pass is under half budget
}

var defaultContextWindow = contextWindow{budget: 100, lines: 3, extend: 5}

// ExtractContext returns plain-text snippets of oldHTML before startLine and
// after endLine (1-based), each at most budget characters. Whole lines are
// stripped of markup before truncation, so a cut never lands inside a tag.
// Nil is returned for a side with nothing to show.
func ExtractContext(oldHTML string, startLine, endLine, budget int) (before, after *string) {
	w := defaultContextWindow
	w.budget = budget
	return w.extract(splitLines(oldHTML), startLine, endLine)
}

func (w contextWindow) extract(lines []string, startLine, endLine int) (before, after *string) {
	total := len(lines)
	if total == 0 || startLine <= 0 || startLine > total {
		return nil, nil
	}

	// Lines are 1-based; the target's first line is lines[startLine-1].
	n := min(w.lines, startLine-1)
	beforeStart := startLine - 1 - n
	beforeText := joinLines(lines[beforeStart : startLine-1])
	if runeCount(beforeText) < w.budget/2 && beforeStart > 0 {
		extStart := max(beforeStart-w.extend, 0)
		beforeText = joinLines(lines[extStart:beforeStart]) + beforeText
	}
	before = snippet(tailChars(StripTags(beforeText), w.budget))

	afterStart := min(max(endLine, 0), total)
	afterEnd := min(afterStart+w.lines, total)
	afterText := joinLines(lines[afterStart:afterEnd])
	if runeCount(afterText) < w.budget/2 && afterEnd < total {
		extEnd := min(afterEnd+w.extend, total)
		afterText += joinLines(lines[afterEnd:extEnd])
	}
	after = snippet(headChars(StripTags(afterText), w.budget))

	return before, after
}

// snippet returns nil for empty text.
func snippet(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// splitLines splits on '\n', dropping a trailing '\r' from each line and the
// empty line after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// joinLines concatenates lines, terminating each with '\n'.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// tailChars keeps the last n characters of s.
func tailChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-max(n, 0):])
}

// headChars keeps the first n characters of s.
func headChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:max(n, 0)])
}
