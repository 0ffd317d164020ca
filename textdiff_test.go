package gotdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestOpsFromDiffs(t *testing.T) {
	tests := []struct {
		name  string
		diffs []diffmatchpatch.Diff
		want  []DiffOp
	}{
		{
			name: "equal only",
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: "abc"},
			},
			want: []DiffOp{
				{Tag: OpEqual, Old: CharRange{0, 3}, New: CharRange{0, 3}},
			},
		},
		{
			name: "delete then insert folds to replace",
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: "A\n"},
				{Type: diffmatchpatch.DiffDelete, Text: "B"},
				{Type: diffmatchpatch.DiffInsert, Text: "C"},
			},
			want: []DiffOp{
				{Tag: OpEqual, Old: CharRange{0, 2}, New: CharRange{0, 2}},
				{Tag: OpReplace, Old: CharRange{2, 3}, New: CharRange{2, 3}},
			},
		},
		{
			name: "insert then delete folds to replace",
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffInsert, Text: "xy"},
				{Type: diffmatchpatch.DiffDelete, Text: "z"},
				{Type: diffmatchpatch.DiffEqual, Text: "q"},
			},
			want: []DiffOp{
				{Tag: OpReplace, Old: CharRange{0, 1}, New: CharRange{0, 2}},
				{Tag: OpEqual, Old: CharRange{1, 2}, New: CharRange{2, 3}},
			},
		},
		{
			name: "ranges count characters",
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: "你好"},
				{Type: diffmatchpatch.DiffInsert, Text: "，"},
				{Type: diffmatchpatch.DiffEqual, Text: "世界"},
			},
			want: []DiffOp{
				{Tag: OpEqual, Old: CharRange{0, 2}, New: CharRange{0, 2}},
				{Tag: OpInsert, Old: CharRange{2, 2}, New: CharRange{2, 3}},
				{Tag: OpEqual, Old: CharRange{2, 4}, New: CharRange{3, 5}},
			},
		},
		{
			name: "empty segments skipped",
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: ""},
				{Type: diffmatchpatch.DiffDelete, Text: "a"},
			},
			want: []DiffOp{
				{Tag: OpDelete, Old: CharRange{0, 1}, New: CharRange{0, 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := opsFromDiffs(tt.diffs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCharDiffer_Partitions(t *testing.T) {
	pairs := []struct{ old, new string }{
		{"", ""},
		{"", "abc"},
		{"abc", ""},
		{"Hello world", "Hello brave world"},
		{"A\nB\n", "A\nC\n"},
		{"你好世界", "你好，世界"},
		{"👍 ok", "👍👍 ok"},
		{"the quick brown fox", "a quick red fox jumps"},
	}

	differ := NewCharDiffer(0)
	for _, p := range pairs {
		ops := differ.Diff(p.old, p.new)
		oldRunes, newRunes := []rune(p.old), []rune(p.new)

		var oldPos, newPos CharOffset
		var rebuilt []rune
		for i, op := range ops {
			if op.Old.Start != oldPos || op.New.Start != newPos {
				t.Fatalf("%q -> %q: op %d starts at %v/%v, want %d/%d", p.old, p.new, i, op.Old, op.New, oldPos, newPos)
			}
			switch op.Tag {
			case OpEqual:
				if op.Old.Len() != op.New.Len() {
					t.Errorf("%q -> %q: equal op %d has unequal sides", p.old, p.new, i)
				}
				rebuilt = append(rebuilt, oldRunes[op.Old.Start:op.Old.End]...)
			case OpDelete:
				if op.New.Len() != 0 {
					t.Errorf("%q -> %q: delete op %d has new text", p.old, p.new, i)
				}
			case OpInsert:
				if op.Old.Len() != 0 {
					t.Errorf("%q -> %q: insert op %d has old text", p.old, p.new, i)
				}
				rebuilt = append(rebuilt, newRunes[op.New.Start:op.New.End]...)
			case OpReplace:
				rebuilt = append(rebuilt, newRunes[op.New.Start:op.New.End]...)
			}
			if i > 0 && op.Tag != OpEqual && ops[i-1].Tag != OpEqual {
				t.Errorf("%q -> %q: adjacent change ops at %d", p.old, p.new, i)
			}
			oldPos, newPos = op.Old.End, op.New.End
		}

		if int(oldPos) != len(oldRunes) || int(newPos) != len(newRunes) {
			t.Errorf("%q -> %q: ops cover %d/%d chars, want %d/%d", p.old, p.new, oldPos, newPos, len(oldRunes), len(newRunes))
		}
		if string(rebuilt) != p.new {
			t.Errorf("%q -> %q: applying ops gives %q", p.old, p.new, string(rebuilt))
		}
	}
}

func TestOpTagString(t *testing.T) {
	tests := map[OpTag]string{
		OpEqual:   "equal",
		OpDelete:  "delete",
		OpInsert:  "insert",
		OpReplace: "replace",
		OpTag(42): "unknown",
	}
	for tag, want := range tests {
		if got := tag.String(); got != want {
			t.Errorf("OpTag(%d).String() = %q, want %q", int(tag), got, want)
		}
	}
}
