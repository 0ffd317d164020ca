package gotdiff

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiffer computes a character diff between two plain texts. The returned
// ops must partition both texts exactly, in character units.
type TextDiffer interface {
	Diff(oldText, newText string) []DiffOp
}

// CharDiffer is the default TextDiffer, backed by diff-match-patch's Myers
// implementation.
type CharDiffer struct {
	// Timeout bounds the search for a minimal diff. Zero means no limit.
	// Any positive value trades minimality for speed: the result is always a
	// valid diff but may be less compact.
	Timeout time.Duration
}

// NewCharDiffer creates a CharDiffer with the given timeout.
func NewCharDiffer(timeout time.Duration) *CharDiffer {
	return &CharDiffer{Timeout: timeout}
}

// Diff implements TextDiffer.
func (c *CharDiffer) Diff(oldText, newText string) []DiffOp {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = c.Timeout
	diffs := dmp.DiffMainRunes([]rune(oldText), []rune(newText), false)
	return opsFromDiffs(diffs)
}

// opsFromDiffs converts diff-match-patch output to character ranges. A deletion
// directly followed by an insertion (or the reverse) becomes one replace op.
func opsFromDiffs(diffs []diffmatchpatch.Diff) []DiffOp {
	ops := make([]DiffOp, 0, len(diffs))
	var oldPos, newPos CharOffset

	for _, d := range diffs {
		n := CharOffset(runeCount(d.Text))
		if n == 0 {
			continue
		}

		var op DiffOp
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = DiffOp{Tag: OpEqual, Old: CharRange{oldPos, oldPos + n}, New: CharRange{newPos, newPos + n}}
			oldPos += n
			newPos += n
		case diffmatchpatch.DiffDelete:
			op = DiffOp{Tag: OpDelete, Old: CharRange{oldPos, oldPos + n}, New: CharRange{newPos, newPos}}
			oldPos += n
		case diffmatchpatch.DiffInsert:
			op = DiffOp{Tag: OpInsert, Old: CharRange{oldPos, oldPos}, New: CharRange{newPos, newPos + n}}
			newPos += n
		}

		if len(ops) > 0 {
			if merged, ok := mergeOps(ops[len(ops)-1], op); ok {
				ops[len(ops)-1] = merged
				continue
			}
		}
		ops = append(ops, op)
	}

	return ops
}

// mergeOps folds two adjacent ops into one when they belong to the same change.
func mergeOps(prev, next DiffOp) (DiffOp, bool) {
	joined := DiffOp{
		Old: CharRange{prev.Old.Start, next.Old.End},
		New: CharRange{prev.New.Start, next.New.End},
	}
	switch {
	case prev.Tag == next.Tag:
		joined.Tag = prev.Tag
	case prev.Tag == OpEqual || next.Tag == OpEqual:
		return DiffOp{}, false
	default:
		// Any mix of delete, insert and replace.
		joined.Tag = OpReplace
	}
	return joined, true
}

var _ TextDiffer = (*CharDiffer)(nil)
